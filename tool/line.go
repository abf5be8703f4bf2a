package tool

import (
	"image"
	"math"
)

// WalkLine visits integer points approximating the segment from (x1, y1)
// to (x2, y2), calling visit exactly once per point.
//
// The walk steps one unit at a time along the dominant axis, the one with
// the larger delta (x on ties), from the first endpoint to the second, both
// included. The other coordinate is interpolated from the slope and rounded
// half away from zero, so mirroring a segment through the origin mirrors
// its walk.
// A zero-length segment visits its single point once.
func WalkLine(x1, y1, x2, y2 int, visit func(x, y int)) {
	dx, dy := x2-x1, y2-y1
	if dx == 0 && dy == 0 {
		visit(x1, y1)
		return
	}

	if abs(dx) >= abs(dy) {
		slope := float64(dy) / float64(dx)
		step := sign(dx)
		for x := x1; ; x += step {
			visit(x, roundInt(float64(y1)+slope*float64(x-x1)))
			if x == x2 {
				return
			}
		}
	}

	slope := float64(dx) / float64(dy)
	step := sign(dy)
	for y := y1; ; y += step {
		visit(roundInt(float64(x1)+slope*float64(y-y1)), y)
		if y == y2 {
			return
		}
	}
}

// LinePoints returns the points WalkLine visits, in order.
func LinePoints(x1, y1, x2, y2 int) []image.Point {
	n := max(abs(x2-x1), abs(y2-y1)) + 1
	pts := make([]image.Point, 0, n)
	WalkLine(x1, y1, x2, y2, func(x, y int) {
		pts = append(pts, image.Pt(x, y))
	})
	return pts
}

// roundInt rounds half away from zero.
func roundInt(v float64) int {
	return int(math.Round(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
