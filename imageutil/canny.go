package imageutil

import "math"

// Canny performs Canny edge detection on a grayscale image and returns
// a binary edge map: 255 where an edge was traced, 0 elsewhere.
// lowThreshold and highThreshold control edge sensitivity.
func Canny(gray *GrayImage, lowThreshold, highThreshold float64) *GrayImage {
	w, h := gray.Width(), gray.Height()

	blurred := convolve(planeFromGray(gray), gaussian5)
	gx := convolve(blurred, sobelX)
	gy := convolve(blurred, sobelY)

	magnitude := newPlane(w, h)
	direction := newPlane(w, h)
	for i := range magnitude.pix {
		magnitude.pix[i] = math.Hypot(gx.pix[i], gy.pix[i])
		direction.pix[i] = math.Atan2(gy.pix[i], gx.pix[i])
	}

	suppressed := suppressNonMaxima(magnitude, direction)
	return traceEdges(suppressed, lowThreshold, highThreshold)
}

// suppressNonMaxima keeps only pixels that are local maxima along their
// gradient direction, thinning ridges to single-pixel edges. Border
// pixels are zeroed since they lack two neighbors along any direction.
func suppressNonMaxima(magnitude, direction *plane) *plane {
	w, h := magnitude.w, magnitude.h
	out := newPlane(w, h)

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			mag := magnitude.at(x, y)

			// Quantize the gradient angle to one of four axes.
			angle := direction.at(x, y) * 180 / math.Pi
			if angle < 0 {
				angle += 180
			}

			var a, b float64
			switch {
			case angle < 22.5 || angle >= 157.5: // horizontal
				a = magnitude.at(x+1, y)
				b = magnitude.at(x-1, y)
			case angle < 67.5: // 45 degrees
				a = magnitude.at(x+1, y+1)
				b = magnitude.at(x-1, y-1)
			case angle < 112.5: // vertical
				a = magnitude.at(x, y+1)
				b = magnitude.at(x, y-1)
			default: // 135 degrees
				a = magnitude.at(x-1, y+1)
				b = magnitude.at(x+1, y-1)
			}

			if mag >= a && mag >= b {
				out.pix[y*w+x] = mag
			}
		}
	}

	return out
}

// traceEdges classifies suppressed magnitudes against the double
// threshold and performs hysteresis: strong pixels seed a flood fill
// that promotes 8-connected weak pixels into edges.
func traceEdges(suppressed *plane, low, high float64) *GrayImage {
	w, h := suppressed.w, suppressed.h
	edges := NewGrayImage(w, h)

	type point struct{ x, y int }
	var stack []point

	weak := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch v := suppressed.at(x, y); {
			case v >= high:
				edges.Pix[y*edges.Stride+x] = 255
				stack = append(stack, point{x, y})
			case v >= low:
				weak[y*w+x] = true
			}
		}
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := p.x+dx, p.y+dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				if weak[ny*w+nx] && edges.Pix[ny*edges.Stride+nx] == 0 {
					edges.Pix[ny*edges.Stride+nx] = 255
					stack = append(stack, point{nx, ny})
				}
			}
		}
	}

	return edges
}
