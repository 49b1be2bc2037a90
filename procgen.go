package footlight

import (
	"image"
	"image/color"
	"math"
)

// Procedural costume generators for examples and tests. There is no asset
// pipeline in this package; a few shapes drawn straight into RGBA buffers
// cover everything the example programs need.

// CircleCostume builds a feathered disc of the given radius tinted col, with
// its rotation origin at the center. Smoothstep falloff and premultiplied
// alpha.
func CircleCostume(radius float64, col color.RGBA) Costume {
	size := max(int(math.Ceil(radius*2)), 1)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - radius
			dy := float64(y) + 0.5 - radius
			dist := math.Sqrt(dx*dx+dy*dy) / radius

			var alpha float64
			if dist < 1 {
				// smoothstep: 1 at center, 0 at edge
				t := 1 - dist
				alpha = t * t * (3 - 2*t)
			}

			off := img.PixOffset(x, y)
			img.Pix[off+0] = uint8(float64(col.R) * alpha)
			img.Pix[off+1] = uint8(float64(col.G) * alpha)
			img.Pix[off+2] = uint8(float64(col.B) * alpha)
			img.Pix[off+3] = uint8(float64(col.A) * alpha)
		}
	}
	return Costume{Image: img, Scale: 1, CenterX: radius, CenterY: radius}
}

// BoxCostume builds a solid w x h rectangle tinted col with its rotation
// origin at the center.
func BoxCostume(w, h int, col color.RGBA) Costume {
	w, h = max(w, 1), max(h, 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, col)
		}
	}
	return Costume{Image: img, Scale: 1, CenterX: float64(w) / 2, CenterY: float64(h) / 2}
}

// CheckerCostume builds a w x h checkerboard of cell-sized squares in the
// two given colors, origin at the center. Handy as a stage backdrop.
func CheckerCostume(w, h, cell int, a, b color.RGBA) Costume {
	w, h, cell = max(w, 1), max(h, 1), max(cell, 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
	return Costume{Image: img, Scale: 1, CenterX: float64(w) / 2, CenterY: float64(h) / 2}
}
