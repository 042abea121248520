package imageutil

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/tiff" // register TIFF decoder
)

// DecodeFile opens and decodes an image file. PNG, JPEG, GIF, and TIFF
// are supported. Errors are returned unwrapped so callers can classify
// them: *os.PathError from the open, image.ErrFormat when no registered
// decoder recognizes the data, and decoder-specific errors otherwise.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}
