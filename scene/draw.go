package scene

import (
	"image/draw"

	"github.com/gogpu/paintkit"
	"github.com/gogpu/paintkit/internal/fill"
)

// Style holds the drawing state a scene starts with.
type Style struct {
	// Color is used by nodes with no color override on their path from the root.
	Color paintkit.RGB

	// LineWidth is the stroke width for outlines, in the coordinates of the
	// root. It scales with transforms below the root; strokes never get
	// thinner than one pixel.
	LineWidth float64
}

// Draw paints the graph rooted at root onto dst.
// view maps root coordinates to dst pixel coordinates.
func Draw(dst draw.Image, root *Node, view paintkit.Matrix, style Style) {
	if root == nil {
		return
	}
	drawNode(fill.New(dst), root, view, style.Color, style.LineWidth)
}

func drawNode(p *fill.Painter, n *Node, m paintkit.Matrix, c paintkit.RGB, width float64) {
	if n.hasColor {
		c = n.color
	}
	switch n.kind {
	case KindGroup:
		for _, child := range n.children {
			drawNode(p, child, m, c, width)
		}
	case KindTransform:
		if len(n.children) == 1 {
			drawNode(p, n.children[0], m.Multiply(n.Local()), c, width)
		}
	case KindShape:
		drawShape(p, n, m, c, width)
	}
}

var origin = paintkit.Pt(0, 0)

func drawShape(p *fill.Painter, n *Node, m paintkit.Matrix, c paintkit.RGB, width float64) {
	switch n.shape {
	case ShapeLine:
		p.StrokeLine(m, origin, paintkit.Pt(1, 0), width, c)
	case ShapeRect:
		p.StrokeRect(m, -0.5, -0.5, 1, 1, width, c)
	case ShapeFilledRect:
		p.FillRect(m, -0.5, -0.5, 1, 1, c)
	case ShapeCircle:
		p.StrokeEllipse(m, origin, 0.5, 0.5, width, c)
	case ShapeFilledCircle:
		p.FillEllipse(m, origin, 0.5, 0.5, c)
	case ShapePolygon:
		p.FillPolygon(m, n.points, c)
	}
}
