package filter

import (
	"math"

	"github.com/gogpu/paintkit"
)

// Convolve writes the convolution of src with k into the interior of dst.
//
// For every pixel with 1 <= x < W-1 and 1 <= y < H-1, each channel of dst
// becomes round(min(255, |sum of k(dx,dy) * src(x+dx, y+dy)|)). Border pixels
// of dst are left as they are. dst and src must have the same size, otherwise
// Convolve does nothing. dst may be src; a snapshot is taken in that case.
func Convolve(dst, src *paintkit.Raster, k Kernel) {
	if !sameSize(dst, src) {
		paintkit.Logger().Warn("filter: raster size mismatch",
			"dst", [2]int{dst.Width(), dst.Height()},
			"src", [2]int{src.Width(), src.Height()})
		return
	}
	if dst == src {
		src = src.Clone()
	}
	convolveRows(dst, src, k, 0, src.Height())
}

// Apply runs filter f over r in place, reading from a snapshot of r.
// Undefined filter values leave r unchanged.
func Apply(r *paintkit.Raster, f Filter) {
	k, ok := f.Kernel()
	if !ok {
		paintkit.Logger().Debug("filter: ignoring undefined filter", "filter", uint8(f))
		return
	}
	if !hasInterior(r) {
		return
	}
	convolveRows(r, r.Clone(), k, 0, r.Height())
	paintkit.Logger().Debug("filter applied", "filter", f.String(),
		"width", r.Width(), "height", r.Height())
}

// BlurTimes applies Blur n times, re-snapshotting before every pass.
func BlurTimes(r *paintkit.Raster, n int) {
	for range n {
		Apply(r, Blur)
	}
}

// BlurThenEmboss applies Blur n times followed by a single Emboss.
func BlurThenEmboss(r *paintkit.Raster, n int) {
	BlurTimes(r, n)
	Apply(r, Emboss)
}

// convolveRows sweeps the interior pixels of rows [y0, y1).
// Rows outside the interior are skipped, so callers may pass any band.
func convolveRows(dst, src *paintkit.Raster, k Kernel, y0, y1 int) {
	w, h := src.Width(), src.Height()
	y0 = max(y0, 1)
	y1 = min(y1, h-1)
	if w < 3 || y0 >= y1 {
		return
	}

	in := src.Pix()
	out := dst.Pix()
	stride := w * 3

	for y := y0; y < y1; y++ {
		for x := 1; x < w-1; x++ {
			var r, g, b float64
			ki := 0
			for j := y - 1; j <= y+1; j++ {
				i := j*stride + (x-1)*3
				for range 3 {
					wgt := k[ki]
					r += float64(in[i+0]) * wgt
					g += float64(in[i+1]) * wgt
					b += float64(in[i+2]) * wgt
					i += 3
					ki++
				}
			}
			o := y*stride + x*3
			out[o+0] = channel(r)
			out[o+1] = channel(g)
			out[o+2] = channel(b)
		}
	}
}

// channel maps a weighted sum to a channel value: round(min(255, |v|)).
func channel(v float64) uint8 {
	return uint8(math.Round(math.Min(255, math.Abs(v))))
}

func sameSize(a, b *paintkit.Raster) bool {
	return a.Width() == b.Width() && a.Height() == b.Height()
}

// hasInterior reports whether r has at least one non-border pixel.
func hasInterior(r *paintkit.Raster) bool {
	return r.Width() >= 3 && r.Height() >= 3
}
