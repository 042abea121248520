// Package img2ascii converts raster images into grids of text
// characters colored with the 16 basic ANSI terminal colors. Pixel
// brightness (or detected edges) selects a character from a fixed
// density ramp; the co-located source pixel selects the nearest ANSI
// color.
package img2ascii

import (
	"fmt"
	"math"

	"github.com/kwren/img2ascii/imageutil"
)

// Grid is a rectangular grid of display characters in row-major order:
// one row per image row, one character per pixel column.
type Grid [][]rune

// charRamp orders characters by perceived brightness from darkest
// (space) to lightest (@).
var charRamp = []rune{' ', '.', ':', '-', '=', '+', '*', '#', '%', '@'}

// BrightnessToChar maps a brightness sample to a ramp character. The
// full 0-255 range is distributed evenly across the ten-character
// ramp, rounding half away from zero: 0 maps to ' ', 127 to '=', 255
// to '@', and the mapping is monotonically non-decreasing.
func BrightnessToChar(brightness uint8) rune {
	index := int(math.Round(float64(brightness) / 255 * float64(len(charRamp)-1)))
	if index > len(charRamp)-1 {
		index = len(charRamp) - 1
	}
	return charRamp[index]
}

// ConvertToASCII maps every brightness sample of a grayscale image
// through the density ramp, producing a grid with the image's
// dimensions. Zero-dimension images are rejected with
// ErrInvalidDimensions.
func ConvertToASCII(gray *imageutil.GrayImage) (Grid, error) {
	return buildGrid(gray.Width(), gray.Height(), gray.ValueAt, BrightnessToChar)
}

// buildGrid is the shared conversion loop behind both the brightness
// and edge paths: it validates the dimensions once, then walks the
// samples in row-major order through the supplied mapping.
func buildGrid(width, height int, sample func(x, y int) uint8, mapSample func(uint8) rune) (Grid, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}

	grid := make(Grid, height)
	for y := 0; y < height; y++ {
		row := make([]rune, width)
		for x := 0; x < width; x++ {
			row[x] = mapSample(sample(x, y))
		}
		grid[y] = row
	}
	return grid, nil
}

func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("image dimensions must be greater than zero: %w", ErrInvalidDimensions)
	}
	return nil
}
