package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Filter selects the interpolation used when resizing.
type Filter int

const (
	// FilterHighQuality uses Catmull-Rom interpolation, the best choice
	// for the large downscales this pipeline performs.
	FilterHighQuality Filter = iota

	// FilterLinear uses bilinear interpolation.
	FilterLinear

	// FilterNearest uses nearest-neighbor interpolation.
	FilterNearest
)

func (f Filter) scaler() draw.Scaler {
	switch f {
	case FilterLinear:
		return draw.BiLinear
	case FilterNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize scales a color image to the exact target dimensions.
func Resize(img *ColorImage, width, height int, filter Filter) *ColorImage {
	dst := NewColorImage(width, height)
	filter.scaler().Scale(
		dst.RGBA, image.Rect(0, 0, width, height),
		img.RGBA, img.Bounds(), draw.Over, nil)
	return dst
}

// ResizeGray scales a grayscale image to the exact target dimensions.
func ResizeGray(img *GrayImage, width, height int, filter Filter) *GrayImage {
	dst := NewGrayImage(width, height)
	filter.scaler().Scale(
		dst.Gray, image.Rect(0, 0, width, height),
		img.Gray, img.Bounds(), draw.Over, nil)
	return dst
}
