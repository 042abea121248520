package img2ascii

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeOutputWidthUserOverride(t *testing.T) {
	res := computeOutputWidth(120, 100)
	assert.Equal(t, 120, res.Width)
	assert.Equal(t, WidthSourceUser, res.Source)

	// An override below the floor is honored verbatim.
	res = computeOutputWidth(20, 100)
	assert.Equal(t, 20, res.Width)
	assert.Equal(t, WidthSourceUser, res.Source)

	// The override also wins when detection failed.
	res = computeOutputWidth(80, 0)
	assert.Equal(t, 80, res.Width)
	assert.Equal(t, WidthSourceUser, res.Source)
}

func TestComputeOutputWidthAppliesMarginAndFloor(t *testing.T) {
	// 100 columns: margin of 2 leaves 98, above the floor.
	res := computeOutputWidth(0, 100)
	assert.Equal(t, 98, res.Width)
	assert.Equal(t, WidthSourceAutoDetected, res.Source)

	// 30 columns: 28 after margin, clamped up to 40.
	res = computeOutputWidth(0, 30)
	assert.Equal(t, 40, res.Width)
	assert.Equal(t, WidthSourceAutoDetected, res.Source)

	// 42 columns sits exactly on the floor after the margin.
	res = computeOutputWidth(0, 42)
	assert.Equal(t, 40, res.Width)

	// 43 columns clears the floor.
	res = computeOutputWidth(0, 43)
	assert.Equal(t, 41, res.Width)

	// A tiny detected width never goes negative.
	res = computeOutputWidth(0, 1)
	assert.Equal(t, 40, res.Width)
	assert.Equal(t, WidthSourceAutoDetected, res.Source)
}

func TestComputeOutputWidthFallback(t *testing.T) {
	res := computeOutputWidth(0, 0)
	assert.Equal(t, 80, res.Width)
	assert.Equal(t, WidthSourceFallback, res.Source)
}

func TestWidthSourceString(t *testing.T) {
	assert.Equal(t, "user", WidthSourceUser.String())
	assert.Equal(t, "auto-detected", WidthSourceAutoDetected.String())
	assert.Equal(t, "fallback", WidthSourceFallback.String())
}
