package img2ascii

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("standard")
	require.NoError(t, err)
	assert.Equal(t, ModeStandard, mode)

	mode, err = ParseMode("edge")
	require.NoError(t, err)
	assert.Equal(t, ModeEdge, mode)
}

func TestParseModeUnknown(t *testing.T) {
	_, err := ParseMode("invalid")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.Contains(t, err.Error(), `"invalid"`)
	assert.Contains(t, err.Error(), `"standard"`)
	assert.Contains(t, err.Error(), `"edge"`)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "standard", ModeStandard.String())
	assert.Equal(t, "edge", ModeEdge.String())
}

func TestConvertDispatchesOnMode(t *testing.T) {
	gray := uniformGray(4, 2, 255)

	grid, err := Convert(gray, ModeStandard)
	require.NoError(t, err)
	assert.Equal(t, '@', grid[0][0])

	// A uniform image has no edges, so edge mode yields spaces.
	grid, err = Convert(gray, ModeEdge)
	require.NoError(t, err)
	assert.Equal(t, ' ', grid[0][0])
}
