package imageutil

// ToGrayscale converts a color image to grayscale using the BT.601
// luminance formula: Y = 0.299*R + 0.587*G + 0.114*B. Integer math,
// rounded to nearest.
func ToGrayscale(img *ColorImage) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000
			if lum > 255 {
				lum = 255
			}
			gray.SetValue(x, y, uint8(lum))
		}
	}

	return gray
}
