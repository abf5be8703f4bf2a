package session

import (
	"bytes"

	"github.com/gogpu/paintkit"
)

// equalRasters reports whether a and b have the same size and pixels.
func equalRasters(a, b *paintkit.Raster) bool {
	return a.Bounds() == b.Bounds() && bytes.Equal(a.Pix(), b.Pix())
}
