package imageutil

// plane is a flat row-major float64 raster used for intermediate
// gradient and magnitude math.
type plane struct {
	w, h int
	pix  []float64
}

func newPlane(w, h int) *plane {
	return &plane{w: w, h: h, pix: make([]float64, w*h)}
}

func planeFromGray(img *GrayImage) *plane {
	p := newPlane(img.Width(), img.Height())
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			p.pix[y*p.w+x] = float64(img.ValueAt(x, y))
		}
	}
	return p
}

func (p *plane) at(x, y int) float64 {
	return p.pix[y*p.w+x]
}

func (p *plane) toGray() *GrayImage {
	img := NewGrayImage(p.w, p.h)
	for i, v := range p.pix {
		img.Pix[i] = clampUint8(v)
	}
	return img
}

// kernel is a square convolution kernel with odd side length.
type kernel struct {
	side    int
	weights []float64
}

// gaussian5 approximates a Gaussian with sigma ~1.4, the standard
// noise-reduction step before Canny gradient computation.
var gaussian5 = kernel{
	side: 5,
	weights: []float64{
		2, 4, 5, 4, 2,
		4, 9, 12, 9, 4,
		5, 12, 15, 12, 5,
		4, 9, 12, 9, 4,
		2, 4, 5, 4, 2,
	},
}

func init() {
	for i := range gaussian5.weights {
		gaussian5.weights[i] /= 159
	}
}

var sobelX = kernel{
	side: 3,
	weights: []float64{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	},
}

var sobelY = kernel{
	side: 3,
	weights: []float64{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	},
}

// convolve applies a kernel to a plane, replicating edge values at the
// borders.
func convolve(src *plane, k kernel) *plane {
	dst := newPlane(src.w, src.h)
	half := k.side / 2

	for y := 0; y < src.h; y++ {
		for x := 0; x < src.w; x++ {
			var sum float64
			for ky := 0; ky < k.side; ky++ {
				for kx := 0; kx < k.side; kx++ {
					sx := clampInt(x+kx-half, 0, src.w-1)
					sy := clampInt(y+ky-half, 0, src.h-1)
					sum += src.at(sx, sy) * k.weights[ky*k.side+kx]
				}
			}
			dst.pix[y*dst.w+x] = sum
		}
	}

	return dst
}

// GaussianBlur applies a 5x5 Gaussian blur to a grayscale image.
func GaussianBlur(img *GrayImage) *GrayImage {
	return convolve(planeFromGray(img), gaussian5).toGray()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampUint8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
