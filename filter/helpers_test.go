package filter

import (
	"bytes"
	"math/rand/v2"

	"github.com/gogpu/paintkit"
)

// Test helper functions shared across filter tests.

// createTestRaster creates a raster filled with the given color.
func createTestRaster(w, h int, c paintkit.RGB) *paintkit.Raster {
	r := paintkit.NewRaster(w, h)
	r.Fill(c)
	return r
}

// noiseRaster creates a raster of deterministic pseudo-random pixels.
func noiseRaster(w, h int, seed uint64) *paintkit.Raster {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r := paintkit.NewRaster(w, h)
	pix := r.Pix()
	for i := range pix {
		pix[i] = uint8(rng.IntN(256))
	}
	return r
}

// bordersEqual reports whether the outermost rows and columns of a and b match.
func bordersEqual(a, b *paintkit.Raster) bool {
	w, h := a.Width(), a.Height()
	for x := 0; x < w; x++ {
		if a.RGBAt(x, 0) != b.RGBAt(x, 0) || a.RGBAt(x, h-1) != b.RGBAt(x, h-1) {
			return false
		}
	}
	for y := 0; y < h; y++ {
		if a.RGBAt(0, y) != b.RGBAt(0, y) || a.RGBAt(w-1, y) != b.RGBAt(w-1, y) {
			return false
		}
	}
	return true
}

// equalRasters reports whether a and b have the same size and pixels.
func equalRasters(a, b *paintkit.Raster) bool {
	return a.Bounds() == b.Bounds() && bytes.Equal(a.Pix(), b.Pix())
}

// kernelSum returns the sum of the kernel weights.
func kernelSum(k Kernel) float64 {
	var s float64
	for _, w := range k {
		s += w
	}
	return s
}
