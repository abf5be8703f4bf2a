package fill

import (
	"image"

	"github.com/gogpu/paintkit"
)

// clipPolygon clips a pixel-space polygon to the rectangle [0,w] x [0,h]
// after shifting it by -origin, using Sutherland-Hodgman. The result is in
// rasterizer coordinates and may be empty.
func clipPolygon(pts []paintkit.Point, w, h float64, origin image.Point) []paintkit.Point {
	out := make([]paintkit.Point, len(pts))
	ox, oy := float64(origin.X), float64(origin.Y)
	for i, pt := range pts {
		out[i] = paintkit.Pt(pt.X-ox, pt.Y-oy)
	}

	out = clipEdge(out, func(p paintkit.Point) float64 { return p.X })
	out = clipEdge(out, func(p paintkit.Point) float64 { return w - p.X })
	out = clipEdge(out, func(p paintkit.Point) float64 { return p.Y })
	out = clipEdge(out, func(p paintkit.Point) float64 { return h - p.Y })
	return out
}

// clipEdge keeps the part of the polygon where dist(p) >= 0.
func clipEdge(pts []paintkit.Point, dist func(paintkit.Point) float64) []paintkit.Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]paintkit.Point, 0, len(pts)+4)
	prev := pts[len(pts)-1]
	dPrev := dist(prev)
	for _, cur := range pts {
		dCur := dist(cur)
		switch {
		case dCur >= 0 && dPrev >= 0:
			out = append(out, cur)
		case dCur >= 0:
			out = append(out, intersect(prev, cur, dPrev, dCur), cur)
		case dPrev >= 0:
			out = append(out, intersect(prev, cur, dPrev, dCur))
		}
		prev, dPrev = cur, dCur
	}
	return out
}

func intersect(a, b paintkit.Point, da, db float64) paintkit.Point {
	t := da / (da - db)
	return paintkit.Pt(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
}
