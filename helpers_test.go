package paintkit

import "bytes"

// equalRasters reports whether a and b have the same size and pixels.
func equalRasters(a, b *Raster) bool {
	return a.Bounds() == b.Bounds() && bytes.Equal(a.Pix(), b.Pix())
}
