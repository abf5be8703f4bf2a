// Package fill paints anti-aliased polygons, ellipses and round-capped
// strokes onto any draw.Image using the x/image/vector rasterizer.
//
// Geometry is given in local coordinates together with a paintkit.Matrix
// mapping them to pixels. Shapes are flattened to polygons in pixel space,
// clipped to the destination bounds and rasterized with source-over
// compositing of an opaque color.
package fill

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/paintkit"
)

// minStrokeWidth is the thinnest stroke drawn, in pixels.
const minStrokeWidth = 1.0

// Painter rasterizes shapes onto a destination image.
// A Painter reuses its rasterizer between shapes and is not safe for
// concurrent use.
type Painter struct {
	dst    draw.Image
	bounds image.Rectangle
	z      *vector.Rasterizer
	paths  [][]paintkit.Point
}

// New creates a Painter drawing onto dst.
func New(dst draw.Image) *Painter {
	b := dst.Bounds()
	return &Painter{
		dst:    dst,
		bounds: b,
		z:      vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// FillPolygon fills the closed polygon pts.
func (p *Painter) FillPolygon(m paintkit.Matrix, pts []paintkit.Point, c paintkit.RGB) {
	if len(pts) < 3 {
		return
	}
	p.add(transformAll(m, pts))
	p.flush(c)
}

// FillRect fills the axis-aligned rectangle with corner (x, y) and size w x h.
func (p *Painter) FillRect(m paintkit.Matrix, x, y, w, h float64, c paintkit.RGB) {
	p.FillPolygon(m, rectPoints(x, y, w, h), c)
}

// FillEllipse fills the ellipse with the given center and radii.
func (p *Painter) FillEllipse(m paintkit.Matrix, center paintkit.Point, rx, ry float64, c paintkit.RGB) {
	p.add(transformAll(m, ellipsePoints(center, rx, ry, segmentsFor(m, rx, ry))))
	p.flush(c)
}

// StrokeLine strokes the segment a-b with round caps.
// width is in local units and scales with m; it never drops below one pixel.
func (p *Painter) StrokeLine(m paintkit.Matrix, a, b paintkit.Point, width float64, c paintkit.RGB) {
	p.addCapsule(m.TransformPoint(a), m.TransformPoint(b), deviceWidth(m, width))
	p.flush(c)
}

// StrokePolygon strokes the outline of the closed polygon pts.
func (p *Painter) StrokePolygon(m paintkit.Matrix, pts []paintkit.Point, width float64, c paintkit.RGB) {
	if len(pts) < 2 {
		return
	}
	dev := transformAll(m, pts)
	w := deviceWidth(m, width)
	for i := range dev {
		p.addCapsule(dev[i], dev[(i+1)%len(dev)], w)
	}
	p.flush(c)
}

// StrokeRect strokes the outline of an axis-aligned rectangle.
func (p *Painter) StrokeRect(m paintkit.Matrix, x, y, w, h, width float64, c paintkit.RGB) {
	p.StrokePolygon(m, rectPoints(x, y, w, h), width, c)
}

// StrokeEllipse strokes the outline of an ellipse.
func (p *Painter) StrokeEllipse(m paintkit.Matrix, center paintkit.Point, rx, ry, width float64, c paintkit.RGB) {
	p.StrokePolygon(m, ellipsePoints(center, rx, ry, segmentsFor(m, rx, ry)), width, c)
}

// add queues a pixel-space polygon for the next flush, clipped to the bounds.
func (p *Painter) add(pts []paintkit.Point) {
	clipped := clipPolygon(pts, float64(p.bounds.Dx()), float64(p.bounds.Dy()), p.bounds.Min)
	if len(clipped) >= 3 {
		p.paths = append(p.paths, clipped)
	}
}

// addCapsule queues the round-capped stroke of segment a-b in pixel space.
// Every capsule has the same winding, so overlapping capsules accumulate
// into a union instead of cancelling out.
func (p *Painter) addCapsule(a, b paintkit.Point, width float64) {
	r := width / 2
	d := b.Sub(a)
	if d.Length() < 1e-9 {
		p.add(ellipsePoints(a, r, r, capSegments(r)*2))
		return
	}
	d = d.Normalize()
	phi := math.Atan2(d.X, -d.Y) // angle of the normal (-d.Y, d.X)
	n := capSegments(r)
	pts := make([]paintkit.Point, 0, 2*(n+1))
	for i := 0; i <= n; i++ {
		t := phi - math.Pi*float64(i)/float64(n)
		pts = append(pts, paintkit.Pt(b.X+r*math.Cos(t), b.Y+r*math.Sin(t)))
	}
	for i := 0; i <= n; i++ {
		t := phi - math.Pi - math.Pi*float64(i)/float64(n)
		pts = append(pts, paintkit.Pt(a.X+r*math.Cos(t), a.Y+r*math.Sin(t)))
	}
	p.add(pts)
}

// flush rasterizes the queued polygons as one coverage mask and composites c.
func (p *Painter) flush(c paintkit.RGB) {
	if len(p.paths) == 0 {
		return
	}
	p.z.Reset(p.bounds.Dx(), p.bounds.Dy())
	p.z.DrawOp = draw.Over
	for _, path := range p.paths {
		p.z.MoveTo(float32(path[0].X), float32(path[0].Y))
		for _, pt := range path[1:] {
			p.z.LineTo(float32(pt.X), float32(pt.Y))
		}
		p.z.ClosePath()
	}
	p.z.Draw(p.dst, p.bounds, image.NewUniform(c.Color()), image.Point{})
	p.paths = p.paths[:0]
}

func transformAll(m paintkit.Matrix, pts []paintkit.Point) []paintkit.Point {
	out := make([]paintkit.Point, len(pts))
	for i, pt := range pts {
		out[i] = m.TransformPoint(pt)
	}
	return out
}

func rectPoints(x, y, w, h float64) []paintkit.Point {
	return []paintkit.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
}

func ellipsePoints(center paintkit.Point, rx, ry float64, n int) []paintkit.Point {
	pts := make([]paintkit.Point, n)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = paintkit.Pt(center.X+rx*math.Cos(t), center.Y+ry*math.Sin(t))
	}
	return pts
}

// segmentsFor picks a polygon resolution for an ellipse drawn under m.
func segmentsFor(m paintkit.Matrix, rx, ry float64) int {
	r := math.Max(math.Abs(rx), math.Abs(ry)) * m.ScaleFactor()
	return min(max(int(math.Ceil(r*1.5)), 16), 360)
}

func capSegments(r float64) int {
	return min(max(int(math.Ceil(r)), 4), 64)
}

func deviceWidth(m paintkit.Matrix, width float64) float64 {
	return math.Max(width*m.ScaleFactor(), minStrokeWidth)
}
