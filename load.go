package img2ascii

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"math"
	"os"

	"github.com/kwren/img2ascii/imageutil"
)

// heightDivisor vertically compresses the resize target because
// terminal character cells are roughly twice as tall as they are wide;
// dividing the height by two preserves the visual aspect ratio in
// characters rather than pixels.
const heightDivisor = 2

// ProcessedImage bundles the two co-sized buffers the pipeline works
// on: the grayscale samples driving character selection and the color
// pixels driving quantization.
type ProcessedImage struct {
	Gray  *imageutil.GrayImage
	Color *imageutil.ColorImage
}

// LoadImage decodes the image at path. Failures are classified into
// the pipeline's error taxonomy: ErrFileNotFound, ErrIO,
// ErrUnsupportedFormat, or ErrDecodeFailed.
func LoadImage(path string) (*imageutil.ColorImage, error) {
	img, err := imageutil.DecodeFile(path)
	if err != nil {
		return nil, classifyLoadError(err, path)
	}
	return imageutil.ColorImageFrom(img), nil
}

// PrepareImage resizes an image for terminal output, producing the
// color buffer and its grayscale counterpart at identical dimensions.
// The target height follows the original aspect ratio compressed by
// heightDivisor, with a floor of one row. A non-positive target width
// or a zero-dimension input fails with ErrInvalidDimensions before
// any resize is attempted.
func PrepareImage(img *imageutil.ColorImage, targetWidth int) (*ProcessedImage, error) {
	if targetWidth <= 0 {
		return nil, fmt.Errorf("target width must be greater than zero: %w", ErrInvalidDimensions)
	}

	width, height := img.Width(), img.Height()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("input image has invalid dimensions: %w", ErrInvalidDimensions)
	}

	aspectRatio := float64(height) / float64(width)
	targetHeight := int(math.Round(aspectRatio * float64(targetWidth) / heightDivisor))
	if targetHeight < 1 {
		targetHeight = 1
	}

	resized := imageutil.Resize(img, targetWidth, targetHeight, imageutil.FilterHighQuality)
	return &ProcessedImage{
		Gray:  imageutil.ToGrayscale(resized),
		Color: resized,
	}, nil
}

func classifyLoadError(err error, path string) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("could not find image file %q: %w", path, ErrFileNotFound)
		}
		return fmt.Errorf("accessing image file %q: %v: %w", path, pathErr.Err, ErrIO)
	}

	if errors.Is(err, image.ErrFormat) {
		return fmt.Errorf("unsupported image format for file %q: %w", path, ErrUnsupportedFormat)
	}

	return fmt.Errorf("failed to decode image %q: %v: %w", path, err, ErrDecodeFailed)
}
