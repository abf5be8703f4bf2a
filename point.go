package paintkit

import "math"

// Point is a position or offset in user space.
type Point struct {
	X, Y float64
}

// Pt returns the Point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the Euclidean length of p taken as a vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns p scaled to unit length, or the zero point if p is zero.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}
