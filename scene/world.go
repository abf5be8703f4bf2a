package scene

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/paintkit"
)

// Default frame size of the world animation, in pixels.
const (
	DefaultWidth  = 700
	DefaultHeight = 500
)

// FrameCycle is the number of frames the cart takes to cross the world.
const FrameCycle = 300

// World coordinates shown in a frame. y grows upwards.
const (
	worldLeft   = 0.0
	worldRight  = 7.0
	worldTop    = 4.0
	worldBottom = -1.0
)

var (
	skyColor    = paintkit.RGB{R: 200, G: 200, B: 255}
	groundColor = paintkit.RGB{R: 0, G: 150, B: 30}
	roadColor   = paintkit.RGB{R: 100, G: 100, B: 150}
	rayColor    = paintkit.RGB{R: 0xDD, G: 0x88, B: 0x00}
	poleColor   = paintkit.RGB{R: 0xAA, G: 0x99, B: 0x99}
	vaneColor   = paintkit.RGB{R: 200, G: 100, B: 100}
)

var (
	groundPath = []paintkit.Point{
		{X: 0, Y: -1}, {X: 0, Y: 0.8}, {X: 1.5, Y: 1.65}, {X: 1.8, Y: 1.3},
		{X: 3, Y: 2.1}, {X: 4.7, Y: 0.7}, {X: 6.1, Y: 1.2}, {X: 7, Y: 0.8},
		{X: 7, Y: -1},
	}
	vanePath = []paintkit.Point{
		{X: 0, Y: 0}, {X: 0.5, Y: 0.1}, {X: 1.5, Y: 0}, {X: 0.5, Y: -0.1},
	}
)

// World is the animated scene of a cart driving along a road past three
// windmills under a turning sun, built as a scene graph.
//
// The graph is built once; each frame only updates the transforms of the
// animated nodes.
type World struct {
	root  *Node
	cart  *Node
	wheel *Node
	sun   *Node
	rotor *Node
	frame int
}

// NewWorld builds the world at frame 0.
func NewWorld() *World {
	w := &World{}
	w.build()
	w.update()
	return w
}

func (w *World) build() {
	sun := []*Node{}
	for i := range 12 {
		sun = append(sun, Transformed(Line()).
			SetScale(0.75, 0.75).
			SetRotation(float64(i*30)).
			WithColor(rayColor))
	}
	sun = append(sun,
		FilledCircle(),
		Transformed(Circle()).WithColor(rayColor),
	)
	w.sun = Transformed(Group(sun...).WithColor(paintkit.Yellow))

	wheel := []*Node{
		Transformed(FilledCircle()).SetScale(2, 2),
		Transformed(FilledCircle()).SetScale(1.6, 1.6).WithColor(paintkit.LightGray),
		Transformed(FilledCircle()).SetScale(0.4, 0.4),
	}
	for i := range 12 {
		wheel = append(wheel, Transformed(Line()).SetRotation(float64(i*30)))
	}
	w.wheel = Transformed(Group(wheel...).WithColor(paintkit.Black))

	w.cart = Transformed(Group(
		Transformed(w.wheel).SetScale(0.8, 0.8).SetTranslation(1.65, -0.1),
		Transformed(w.wheel).SetScale(0.8, 0.8).SetTranslation(-1.65, -0.1),
		Transformed(FilledRect()).SetScale(6, 1.5).SetTranslation(0, 1),
		Transformed(FilledRect()).SetScale(2.6, 1).SetTranslation(-1, 2),
	).WithColor(paintkit.Red)).SetScale(0.3, 0.3)

	vane := Polygon(vanePath...)
	w.rotor = Transformed(Group(
		vane,
		Transformed(vane).SetRotation(120),
		Transformed(vane).SetRotation(240),
	).WithColor(vaneColor))

	windmill := Group(
		Transformed(FilledRect()).SetScale(0.1, 3).SetTranslation(0, 1.5),
		Transformed(w.rotor).SetTranslation(0, 3),
	).WithColor(poleColor)

	w.root = Group(
		Polygon(groundPath...),
		Transformed(FilledRect()).SetScale(7, 0.8).SetTranslation(3.5, 0).WithColor(roadColor),
		Transformed(FilledRect()).SetScale(7, 0.06).SetTranslation(3.5, 0).WithColor(paintkit.White),
		Transformed(windmill).SetScale(0.6, 0.6).SetTranslation(0.75, 1),
		Transformed(windmill).SetScale(0.4, 0.4).SetTranslation(2.2, 1.3),
		Transformed(windmill).SetScale(0.7, 0.7).SetTranslation(3.7, 0.8),
		Transformed(w.sun).SetTranslation(5.5, 3.3),
		w.cart,
	).WithColor(groundColor)
}

// update sets the animated transforms for the current frame.
func (w *World) update() {
	n := float64(w.frame)
	w.cart.SetTranslation(-3+13*float64(w.frame%FrameCycle)/FrameCycle, 0)
	w.wheel.SetRotation(-n * 3.1)
	w.sun.SetRotation(-n)
	w.rotor.SetRotation(n * 2.7)
}

// Root returns the root node of the world graph.
func (w *World) Root() *Node {
	return w.root
}

// Frame returns the current frame number.
func (w *World) Frame() int {
	return w.frame
}

// SetFrame moves the animation to frame n.
func (w *World) SetFrame(n int) {
	w.frame = n
	w.update()
}

// Advance moves the animation to the next frame.
func (w *World) Advance() {
	w.SetFrame(w.frame + 1)
}

// Render paints the current frame onto dst, filling its bounds.
func (w *World) Render(dst draw.Image) {
	b := dst.Bounds()
	draw.Draw(dst, b, image.NewUniform(skyColor.Color()), image.Point{}, draw.Src)

	view, pixelSize := viewFor(b)
	Draw(dst, w.root, view, Style{Color: paintkit.Black, LineWidth: pixelSize})
	paintkit.Logger().Debug("scene: rendered world frame", "frame", w.frame, "size", b.Size())
}

// viewFor returns the world-to-pixel transform for a destination rectangle.
func viewFor(b image.Rectangle) (paintkit.Matrix, float64) {
	view, pixelSize := Limits(b.Dx(), b.Dy(), worldLeft, worldRight, worldTop, worldBottom, false)
	return paintkit.Translate(float64(b.Min.X), float64(b.Min.Y)).Multiply(view), pixelSize
}
