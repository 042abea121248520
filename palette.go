package img2ascii

import (
	"math"

	"github.com/kwren/img2ascii/imageutil"
)

// ansiColor pairs a reference RGB value with its foreground escape
// sequence.
type ansiColor struct {
	rgb  imageutil.RGB
	code string
}

// ansiPalette holds the 16 basic ANSI foreground colors. The order is
// part of the quantizer's contract: the scan starts at black and the
// first entry wins ties, keeping output byte-for-byte reproducible.
var ansiPalette = [16]ansiColor{
	{imageutil.RGB{R: 0, G: 0, B: 0}, "\x1b[30m"},       // black
	{imageutil.RGB{R: 128, G: 0, B: 0}, "\x1b[31m"},     // red
	{imageutil.RGB{R: 0, G: 128, B: 0}, "\x1b[32m"},     // green
	{imageutil.RGB{R: 128, G: 128, B: 0}, "\x1b[33m"},   // yellow
	{imageutil.RGB{R: 0, G: 0, B: 128}, "\x1b[34m"},     // blue
	{imageutil.RGB{R: 128, G: 0, B: 128}, "\x1b[35m"},   // magenta
	{imageutil.RGB{R: 0, G: 128, B: 128}, "\x1b[36m"},   // cyan
	{imageutil.RGB{R: 192, G: 192, B: 192}, "\x1b[37m"}, // white
	{imageutil.RGB{R: 128, G: 128, B: 128}, "\x1b[90m"}, // bright black
	{imageutil.RGB{R: 255, G: 0, B: 0}, "\x1b[91m"},     // bright red
	{imageutil.RGB{R: 0, G: 255, B: 0}, "\x1b[92m"},     // bright green
	{imageutil.RGB{R: 255, G: 255, B: 0}, "\x1b[93m"},   // bright yellow
	{imageutil.RGB{R: 0, G: 0, B: 255}, "\x1b[94m"},     // bright blue
	{imageutil.RGB{R: 255, G: 0, B: 255}, "\x1b[95m"},   // bright magenta
	{imageutil.RGB{R: 0, G: 255, B: 255}, "\x1b[96m"},   // bright cyan
	{imageutil.RGB{R: 255, G: 255, B: 255}, "\x1b[97m"}, // bright white
}

// Reset clears all terminal color attributes.
const Reset = "\x1b[0m"

// RGBToANSI returns the escape sequence of the palette entry nearest
// to the given color by Euclidean distance in RGB space. The scan
// visits the palette in declaration order and only a strictly smaller
// distance replaces the current best, so the earliest entry wins ties.
func RGBToANSI(r, g, b uint8) string {
	minDistance := math.MaxFloat64
	closest := ansiPalette[0].code

	for _, entry := range ansiPalette {
		dr := float64(r) - float64(entry.rgb.R)
		dg := float64(g) - float64(entry.rgb.G)
		db := float64(b) - float64(entry.rgb.B)
		distance := math.Sqrt(dr*dr + dg*dg + db*db)

		if distance < minDistance {
			minDistance = distance
			closest = entry.code
		}
	}

	return closest
}
