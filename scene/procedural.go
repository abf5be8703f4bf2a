package scene

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/paintkit"
	"github.com/gogpu/paintkit/internal/fill"
)

// Colors that differ between the procedural rendition and the graph.
var (
	panelColor     = paintkit.LightGray
	proceduralPole = paintkit.RGB{R: 225, G: 200, B: 200}
	proceduralVane = poleColor
)

// stripeWidth is the width of the road stripe, in pixels.
const stripeWidth = 5.0

// DrawProcedural paints frame of the world onto dst without a scene graph.
// Every object is drawn by a function that receives its modeling transform
// and builds the transforms of its parts from it.
//
// It differs from [World] in detail: the sun has 13 rays, wheels have 15
// spokes, and the rotations are driven by the frame number in radians.
func DrawProcedural(dst draw.Image, frame int) {
	b := dst.Bounds()
	draw.Draw(dst, b, image.NewUniform(panelColor.Color()), image.Point{}, draw.Src)

	view, pixelSize := viewFor(b)
	s := &procedural{p: fill.New(dst), frame: float64(frame), pixelSize: pixelSize}

	s.p.FillRect(view, 0, 0, 7, 4, skyColor)
	s.p.FillPolygon(view, groundPath, groundColor)
	s.p.FillRect(view, 0, -0.4, 7, 0.8, roadColor)
	s.p.StrokeLine(view, paintkit.Pt(0, 0), paintkit.Pt(7, 0), stripeWidth*pixelSize, paintkit.White)

	s.sun(view.Translate(5.5, 3.3))
	s.windmill(view.Translate(0.75, 1).Scale(0.6, 0.6))
	s.windmill(view.Translate(2.2, 1.3).Scale(0.4, 0.4))
	s.windmill(view.Translate(3.7, 0.8).Scale(0.7, 0.7))
	s.cart(view.Translate(-3+13*float64(frame%FrameCycle)/FrameCycle, 0).Scale(0.3, 0.3))

	paintkit.Logger().Debug("scene: rendered procedural frame", "frame", frame, "size", b.Size())
}

type procedural struct {
	p         *fill.Painter
	frame     float64
	pixelSize float64
}

// sun draws the sun centered at the origin with radius 0.5.
func (s *procedural) sun(m paintkit.Matrix) {
	m = m.Rotate(-s.frame / 30)
	rays := m
	for range 13 {
		rays = rays.Rotate(2 * math.Pi / 13)
		s.p.StrokeLine(rays, paintkit.Pt(0, 0), paintkit.Pt(0.75, 0), s.pixelSize, rayColor)
	}
	s.p.FillEllipse(m, paintkit.Pt(0, 0), 0.5, 0.5, paintkit.Yellow)
	s.p.StrokeEllipse(m, paintkit.Pt(0, 0), 0.5, 0.5, s.pixelSize, rayColor)
}

// windmill draws a windmill whose pole stands on the origin and is 3 units tall.
func (s *procedural) windmill(m paintkit.Matrix) {
	s.p.FillRect(m, -0.05, 0, 0.1, 3, proceduralPole)
	vanes := m.Translate(0, 3).Rotate(s.frame / 23)
	for range 3 {
		vanes = vanes.Rotate(2 * math.Pi / 3)
		s.p.FillPolygon(vanes, vanePath, proceduralVane)
	}
}

// cart draws a cart whose body is 6 units long and 2 units high, with the
// bottom of the body at the origin.
func (s *procedural) cart(m paintkit.Matrix) {
	s.wheel(m.Translate(-1.5, -0.1).Scale(0.8, 0.8))
	s.wheel(m.Translate(1.5, -0.1).Scale(0.8, 0.8))
	s.p.FillRect(m, -3, 0, 6, 2, paintkit.Red)
	s.p.FillRect(m, -2.3, 1, 2.6, 1, paintkit.Red)
}

// wheel draws a wheel of radius 1 centered at the origin.
func (s *procedural) wheel(m paintkit.Matrix) {
	s.p.FillEllipse(m, paintkit.Pt(0, 0), 1, 1, paintkit.Black)
	s.p.FillEllipse(m, paintkit.Pt(0, 0), 0.8, 0.8, paintkit.LightGray)
	s.p.FillEllipse(m, paintkit.Pt(0, 0), 0.2, 0.2, paintkit.Black)
	spokes := m.Rotate(-s.frame / 30)
	for range 15 {
		spokes = spokes.Rotate(2 * math.Pi / 15)
		s.p.StrokeRect(spokes, 0, -0.1, 1, 0.2, s.pixelSize, paintkit.Black)
	}
}
