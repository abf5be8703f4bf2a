// Package session implements the paint program: a canvas, the selected
// tool, color and line width, and the gesture state machine that turns
// pointer presses, drags and releases into drawing.
package session

import (
	"fmt"
	"image"
	"log/slog"
	"slices"

	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/image/draw"

	"github.com/gogpu/paintkit"
	"github.com/gogpu/paintkit/filter"
	"github.com/gogpu/paintkit/tool"
)

// Canvas defaults.
const (
	DefaultWidth     = 640
	DefaultHeight    = 480
	DefaultLineWidth = 5
)

// background is the canvas color after Clear and under the eraser.
var background = paintkit.White

var lineWidths = []int{1, 2, 3, 5, 7, 10, 15, 20, 25}

// LineWidths returns the selectable line widths in menu order.
func LineWidths() []int {
	return slices.Clone(lineWidths)
}

// Session is one paint program: a canvas and the state of the tools
// working on it.
//
// A Session is driven from one goroutine, the way a window delivers its
// events; it is not safe for concurrent use.
type Session struct {
	canvas *paintkit.Raster

	tool      tool.Kind
	color     paintkit.RGB
	lineWidth int

	dragging bool
	start    image.Point // where the gesture began
	prev     image.Point // last pointer position of the gesture
	smudge   tool.SmudgeGrid

	loaded *image.RGBA // copy of the last image loaded, for ReloadImage

	engine *filter.Engine
	logger *slog.Logger
}

// New creates a session with a white width x height canvas, the Sketch
// tool, black paint and the default line width. Non-positive sizes select
// the default canvas size.
func New(width, height int, opts ...Option) *Session {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = paintkit.Logger()
	}
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}

	s := &Session{
		canvas:    paintkit.NewRaster(width, height),
		tool:      tool.Sketch,
		color:     paintkit.Black,
		lineWidth: DefaultLineWidth,
		engine:    filter.NewEngine(filter.WithWorkers(o.workers), filter.WithLogger(o.logger)),
		logger:    o.logger,
	}
	s.canvas.Fill(background)
	return s
}

// Close releases the filter workers. The session stays usable.
func (s *Session) Close() {
	s.engine.Close()
}

// Canvas returns the canvas. Changes to it are visible to the session.
func (s *Session) Canvas() *paintkit.Raster {
	return s.canvas
}

// Tool returns the selected tool.
func (s *Session) Tool() tool.Kind {
	return s.tool
}

// Color returns the drawing color.
func (s *Session) Color() paintkit.RGB {
	return s.color
}

// LineWidth returns the line width used by Sketch and the Line tool.
func (s *Session) LineWidth() int {
	return s.lineWidth
}

// Dragging reports whether a gesture is in progress.
func (s *Session) Dragging() bool {
	return s.dragging
}

// SetTool selects a tool.
func (s *Session) SetTool(k tool.Kind) error {
	if !slices.Contains(tool.Kinds(), k) {
		return fmt.Errorf("%w: %d", paintkit.ErrUnknownTool, k)
	}
	s.tool = k
	return nil
}

// SetColor selects the drawing color. Picking a color while Smudge or
// Erase is selected switches to Sketch.
func (s *Session) SetColor(c paintkit.RGB) {
	s.color = c
	s.leavePointTool()
}

// SetLineWidth selects one of [LineWidths]. Like SetColor it switches
// Smudge and Erase to Sketch.
func (s *Session) SetLineWidth(w int) error {
	if !slices.Contains(lineWidths, w) {
		return fmt.Errorf("%w: %d", paintkit.ErrInvalidWidth, w)
	}
	s.lineWidth = w
	s.leavePointTool()
	return nil
}

func (s *Session) leavePointTool() {
	if s.tool.IsPointTool() {
		s.tool = tool.Sketch
	}
}

// Press starts a gesture at (x, y). A press during a gesture is ignored.
//
// Shape tools remember the start point, Erase clears around it and Smudge
// picks up paint there.
func (s *Session) Press(x, y int) {
	if s.dragging {
		s.logger.Warn("session: press during gesture ignored", "x", x, "y", y)
		return
	}
	s.dragging = true
	s.start = image.Pt(x, y)
	s.prev = s.start

	switch s.tool {
	case tool.Erase:
		tool.EraseAt(s.canvas, x, y, background)
	case tool.Smudge:
		s.smudge.Grab(s.canvas, x, y)
	case tool.Sketch, tool.Line, tool.Rectangle, tool.Oval:
	}
	s.logger.Debug("session: press", "tool", s.tool.String(), "x", x, "y", y)
}

// Drag continues the gesture to (x, y). Without a gesture it does nothing.
//
// Sketch draws a segment from the previous position; Smudge and Erase are
// applied at every point of the line from the previous position; shape
// tools only move the end of the previewed shape.
func (s *Session) Drag(x, y int) {
	if !s.dragging {
		return
	}
	switch s.tool {
	case tool.Sketch:
		tool.StrokeSegment(s.canvas, s.prev.X, s.prev.Y, x, y, float64(s.lineWidth), s.color)
	case tool.Smudge:
		tool.WalkLine(s.prev.X, s.prev.Y, x, y, func(px, py int) {
			s.smudge.Exchange(s.canvas, px, py)
		})
	case tool.Erase:
		tool.WalkLine(s.prev.X, s.prev.Y, x, y, func(px, py int) {
			tool.EraseAt(s.canvas, px, py, background)
		})
	case tool.Line, tool.Rectangle, tool.Oval:
	}
	s.prev = image.Pt(x, y)
}

// Release ends the gesture. Shape tools commit their shape from the start
// point to the last dragged position.
func (s *Session) Release() {
	if !s.dragging {
		return
	}
	s.dragging = false
	if s.tool.IsShape() {
		s.drawShape(s.canvas)
	}
	s.smudge.Reset()
	s.logger.Debug("session: release", "tool", s.tool.String(), "x", s.prev.X, "y", s.prev.Y)
}

// Preview returns a copy of the canvas with the shape being dragged drawn
// on top, as it should be shown while the gesture is in progress.
func (s *Session) Preview() *paintkit.Raster {
	out := s.canvas.Clone()
	if s.dragging && s.tool.IsShape() {
		s.drawShape(out)
	}
	return out
}

func (s *Session) drawShape(dst draw.Image) {
	tool.DrawShape(dst, s.tool, s.start.X, s.start.Y, s.prev.X, s.prev.Y, float64(s.lineWidth), s.color)
}

// Clear fills the canvas with white.
func (s *Session) Clear() {
	s.canvas.Fill(background)
}

// ApplyFilter runs a filter preset over the whole canvas.
func (s *Session) ApplyFilter(p filter.Preset) error {
	if !slices.Contains(filter.Presets(), p) {
		return fmt.Errorf("%w: %d", paintkit.ErrUnknownFilter, p)
	}
	s.engine.Run(s.canvas, p)
	s.logger.Debug("session: filter applied", "preset", p.String())
	return nil
}

// LoadImage draws img scaled to cover the whole canvas and remembers a
// copy of it for ReloadImage, so later changes to img do not show up on
// reload.
func (s *Session) LoadImage(img image.Image) {
	snapshot := clone.AsRGBA(img)
	s.loaded = snapshot
	s.paintImage(snapshot)
	s.logger.Info("session: image loaded", "size", img.Bounds().Size())
}

// LoadImageFile decodes the image at path and loads it with LoadImage.
func (s *Session) LoadImageFile(path string) error {
	img, err := paintkit.LoadImage(path)
	if err != nil {
		return err
	}
	s.LoadImage(img)
	return nil
}

// ReloadImage draws the last loaded image again.
// It returns paintkit.ErrNoImage if no image was loaded.
func (s *Session) ReloadImage() error {
	if s.loaded == nil {
		return paintkit.ErrNoImage
	}
	s.paintImage(s.loaded)
	return nil
}

// HasImage reports whether an image was loaded, enabling ReloadImage.
func (s *Session) HasImage() bool {
	return s.loaded != nil
}

func (s *Session) paintImage(img image.Image) {
	if img.Bounds().Empty() {
		return
	}
	draw.CatmullRom.Scale(s.canvas, s.canvas.Bounds(), img, img.Bounds(), draw.Over, nil)
}

// SavePNG writes the canvas to a PNG file.
func (s *Session) SavePNG(path string) error {
	return s.canvas.SavePNG(path)
}
