// Package imageutil provides the pure Go image processing used by the
// ASCII conversion pipeline: decoding, resizing, grayscale conversion,
// and Canny edge detection.
package imageutil

import (
	"image"
	"image/color"
)

// RGB is a color in the RGB color space with 8-bit channels and no alpha.
type RGB struct {
	R, G, B uint8
}

// RGBFromColor converts a color.Color to RGB, dropping any alpha.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ColorImage is an RGBA raster with convenience accessors for the
// conversion pipeline. The zero point is always (0, 0).
type ColorImage struct {
	*image.RGBA
}

// NewColorImage creates a ColorImage with the given dimensions.
func NewColorImage(width, height int) *ColorImage {
	return &ColorImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// ColorImageFrom copies any image.Image into a zero-based ColorImage.
func ColorImageFrom(img image.Image) *ColorImage {
	bounds := img.Bounds()
	dst := NewColorImage(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return dst
}

// Width returns the image width in pixels.
func (img *ColorImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height in pixels.
func (img *ColorImage) Height() int {
	return img.Bounds().Dy()
}

// RGBAt returns the color at (x, y) with alpha dropped.
func (img *ColorImage) RGBAt(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the color at (x, y) with full opacity.
func (img *ColorImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// GrayImage is a single-channel raster used for brightness samples and
// edge maps. The zero point is always (0, 0).
type GrayImage struct {
	*image.Gray
}

// NewGrayImage creates a GrayImage with the given dimensions.
func NewGrayImage(width, height int) *GrayImage {
	return &GrayImage{
		Gray: image.NewGray(image.Rect(0, 0, width, height)),
	}
}

// Width returns the image width in pixels.
func (img *GrayImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height in pixels.
func (img *GrayImage) Height() int {
	return img.Bounds().Dy()
}

// ValueAt returns the brightness sample at (x, y).
func (img *GrayImage) ValueAt(x, y int) uint8 {
	return img.Pix[y*img.Stride+x]
}

// SetValue sets the brightness sample at (x, y).
func (img *GrayImage) SetValue(x, y int, v uint8) {
	img.Pix[y*img.Stride+x] = v
}
