package img2ascii

import "github.com/kwren/img2ascii/imageutil"

// Canny thresholds for edge mode. Fixed rather than configurable.
const (
	cannyLowThreshold  = 50
	cannyHighThreshold = 100
)

// EdgeToChar maps a binary edge sample to a character: 255 (edge)
// becomes '#', everything else becomes a space. Upstream guarantees
// samples are exactly 0 or 255; intermediate values are tolerated and
// treated as non-edges.
func EdgeToChar(value uint8) rune {
	if value == 255 {
		return '#'
	}
	return ' '
}

// DetectAndConvert runs Canny edge detection over a grayscale image
// and maps the binary edge map to a character grid of the same
// dimensions. Zero-dimension images are rejected with
// ErrInvalidDimensions before detection is attempted.
func DetectAndConvert(gray *imageutil.GrayImage) (Grid, error) {
	if err := validateDimensions(gray.Width(), gray.Height()); err != nil {
		return nil, err
	}

	edges := imageutil.Canny(gray, cannyLowThreshold, cannyHighThreshold)
	return buildGrid(edges.Width(), edges.Height(), edges.ValueAt, EdgeToChar)
}
