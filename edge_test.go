package img2ascii

import (
	"errors"
	"testing"

	"github.com/kwren/img2ascii/imageutil"
)

func TestEdgeToCharBoundaryValues(t *testing.T) {
	if got := EdgeToChar(255); got != '#' {
		t.Errorf("Expected '#' for edge value 255, got %q", got)
	}
	if got := EdgeToChar(0); got != ' ' {
		t.Errorf("Expected ' ' for edge value 0, got %q", got)
	}
}

func TestEdgeToCharLenientOnNonBinaryValues(t *testing.T) {
	// The upstream detector only emits 0 or 255, but any non-255
	// value maps to a space.
	for _, v := range []uint8{1, 64, 128, 254} {
		if got := EdgeToChar(v); got != ' ' {
			t.Errorf("Expected ' ' for edge value %d, got %q", v, got)
		}
	}
}

func TestDetectAndConvertDimensionsMatch(t *testing.T) {
	grid, err := DetectAndConvert(uniformGray(10, 5, 128))
	if err != nil {
		t.Fatalf("Conversion failed: %v", err)
	}

	if len(grid) != 5 {
		t.Errorf("Expected 5 rows, got %d", len(grid))
	}
	for y, row := range grid {
		if len(row) != 10 {
			t.Errorf("Expected 10 characters in row %d, got %d", y, len(row))
		}
	}
}

func TestDetectAndConvertUniformImageHasNoEdges(t *testing.T) {
	grid, err := DetectAndConvert(uniformGray(8, 6, 0))
	if err != nil {
		t.Fatalf("Conversion failed: %v", err)
	}

	for y, row := range grid {
		for x, ch := range row {
			if ch != ' ' {
				t.Errorf("Expected ' ' at (%d, %d), got %q", x, y, ch)
			}
		}
	}
}

func TestDetectAndConvertFindsContour(t *testing.T) {
	// White square on a black background; the contour must show up
	// as '#' characters and the output must stay binary.
	gray := uniformGray(24, 24, 0)
	for y := 8; y < 16; y++ {
		for x := 8; x < 16; x++ {
			gray.SetValue(x, y, 255)
		}
	}

	grid, err := DetectAndConvert(gray)
	if err != nil {
		t.Fatalf("Conversion failed: %v", err)
	}

	edgeCount := 0
	for y, row := range grid {
		for x, ch := range row {
			switch ch {
			case '#':
				edgeCount++
			case ' ':
			default:
				t.Errorf("Unexpected character %q at (%d, %d)", ch, x, y)
			}
		}
	}
	if edgeCount == 0 {
		t.Error("Expected at least one edge character for a high-contrast square")
	}
}

func TestDetectAndConvertRejectsZeroDimensions(t *testing.T) {
	_, err := DetectAndConvert(imageutil.NewGrayImage(0, 0))
	if err == nil {
		t.Fatal("Expected error for zero-dimension image, got nil")
	}
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions, got %v", err)
	}
}
