package scene

import (
	"math"

	"github.com/gogpu/paintkit"
)

// Limits returns the transform that shows the world rectangle
// [xleft, xright] x [ytop, ybottom] in a width x height pixel area whose
// top-left pixel is (0, 0), together with the size of one pixel in world
// units.
//
// ybottom may be less than ytop, which makes y grow upwards. With
// preserveAspect the requested rectangle is widened in one direction so
// that world units are square; otherwise it fills the area exactly.
//
// An empty area or an empty rectangle yields the identity and a pixel size of 1.
func Limits(width, height int, xleft, xright, ytop, ybottom float64, preserveAspect bool) (paintkit.Matrix, float64) {
	if width <= 0 || height <= 0 || xright == xleft || ybottom == ytop {
		return paintkit.Identity(), 1
	}
	w, h := float64(width), float64(height)

	if preserveAspect {
		displayAspect := math.Abs(h / w)
		requestedAspect := math.Abs((ybottom - ytop) / (xright - xleft))
		switch {
		case displayAspect > requestedAspect:
			excess := (ybottom - ytop) * (displayAspect/requestedAspect - 1)
			ybottom += excess / 2
			ytop -= excess / 2
		case displayAspect < requestedAspect:
			excess := (xright - xleft) * (requestedAspect/displayAspect - 1)
			xright += excess / 2
			xleft -= excess / 2
		}
	}

	pixelWidth := math.Abs((xright - xleft) / w)
	pixelHeight := math.Abs((ybottom - ytop) / h)
	pixelSize := math.Min(pixelWidth, pixelHeight)

	view := paintkit.Scale(w/(xright-xleft), h/(ybottom-ytop)).Translate(-xleft, -ytop)
	return view, pixelSize
}
