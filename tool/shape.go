package tool

import (
	"image/draw"

	"github.com/gogpu/paintkit"
	"github.com/gogpu/paintkit/internal/fill"
)

// DrawShape draws the shape of tool kind spanned by the drag from (x1, y1)
// to (x2, y2) onto dst:
//   - Line: a stroke of the given width with round caps
//   - Rectangle: the filled rectangle with those corners
//   - Oval: the filled ellipse inscribed in that rectangle
//
// Other tools draw nothing.
func DrawShape(dst draw.Image, kind Kind, x1, y1, x2, y2 int, width float64, c paintkit.RGB) {
	switch kind {
	case Line:
		StrokeSegment(dst, x1, y1, x2, y2, width, c)
	case Rectangle:
		x, y, w, h := spanned(x1, y1, x2, y2)
		fill.New(dst).FillRect(paintkit.Identity(), x, y, w, h, c)
	case Oval:
		x, y, w, h := spanned(x1, y1, x2, y2)
		if w == 0 || h == 0 {
			return
		}
		center := paintkit.Pt(x+w/2, y+h/2)
		fill.New(dst).FillEllipse(paintkit.Identity(), center, w/2, h/2, c)
	case Sketch, Smudge, Erase:
	}
}

// StrokeSegment strokes the segment between two pixels with round caps.
// The stroke runs through the pixel centers.
func StrokeSegment(dst draw.Image, x1, y1, x2, y2 int, width float64, c paintkit.RGB) {
	a := paintkit.Pt(float64(x1)+0.5, float64(y1)+0.5)
	b := paintkit.Pt(float64(x2)+0.5, float64(y2)+0.5)
	fill.New(dst).StrokeLine(paintkit.Identity(), a, b, width, c)
}

// spanned returns the rectangle with corners (x1, y1) and (x2, y2).
func spanned(x1, y1, x2, y2 int) (x, y, w, h float64) {
	return float64(min(x1, x2)), float64(min(y1, y2)),
		float64(abs(x1 - x2)), float64(abs(y1 - y2))
}
