package scene

import "github.com/gogpu/paintkit"

// Kind identifies the variant of a Node.
type Kind uint8

const (
	// KindShape is a leaf drawing one unit shape.
	KindShape Kind = iota

	// KindTransform draws a single child under a translation, rotation and scale.
	KindTransform

	// KindGroup draws its children in order.
	KindGroup
)

const unknownStr = "Unknown"

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindShape:
		return "Shape"
	case KindTransform:
		return "Transform"
	case KindGroup:
		return "Group"
	default:
		return unknownStr
	}
}

// Shape identifies the geometry of a shape node.
type Shape uint8

// Unit shapes. Squares and circles are centered at the origin with
// side and diameter 1.
const (
	// ShapeLine is the segment from (0, 0) to (1, 0).
	ShapeLine Shape = iota

	// ShapeRect is the outline of the unit square.
	ShapeRect

	// ShapeFilledRect is the filled unit square.
	ShapeFilledRect

	// ShapeCircle is the outline of the unit circle.
	ShapeCircle

	// ShapeFilledCircle is the filled unit circle.
	ShapeFilledCircle

	// ShapePolygon is a filled closed polygon.
	ShapePolygon
)

// String returns a human-readable name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeLine:
		return "Line"
	case ShapeRect:
		return "Rect"
	case ShapeFilledRect:
		return "FilledRect"
	case ShapeCircle:
		return "Circle"
	case ShapeFilledCircle:
		return "FilledCircle"
	case ShapePolygon:
		return "Polygon"
	default:
		return unknownStr
	}
}

// Node is an element of a scene graph.
//
// Children are fixed when a node is created, so every graph is acyclic.
// A node may appear under several parents; the wheel of a cart is drawn
// twice from one node. Transform parameters stay mutable for animation.
type Node struct {
	kind     Kind
	shape    Shape
	points   []paintkit.Point
	children []*Node

	color    paintkit.RGB
	hasColor bool

	// Transform parameters, used by KindTransform only.
	tx, ty   float64
	rotation float64 // degrees
	sx, sy   float64
}

func shapeNode(s Shape) *Node {
	return &Node{kind: KindShape, shape: s}
}

// Line returns a node drawing the segment from (0, 0) to (1, 0).
func Line() *Node { return shapeNode(ShapeLine) }

// Rect returns a node outlining the unit square centered at the origin.
func Rect() *Node { return shapeNode(ShapeRect) }

// FilledRect returns a node filling the unit square centered at the origin.
func FilledRect() *Node { return shapeNode(ShapeFilledRect) }

// Circle returns a node outlining the circle of diameter 1 centered at the origin.
func Circle() *Node { return shapeNode(ShapeCircle) }

// FilledCircle returns a node filling the circle of diameter 1 centered at the origin.
func FilledCircle() *Node { return shapeNode(ShapeFilledCircle) }

// Polygon returns a node filling the closed polygon through pts.
// Fewer than three points draw nothing.
func Polygon(pts ...paintkit.Point) *Node {
	n := shapeNode(ShapePolygon)
	n.points = append([]paintkit.Point(nil), pts...)
	return n
}

// Group returns a node drawing children in order. Nil children are skipped.
func Group(children ...*Node) *Node {
	n := &Node{kind: KindGroup}
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}

// Transformed returns a node drawing child under an identity transform.
// Use SetTranslation, SetRotation and SetScale to place it.
func Transformed(child *Node) *Node {
	n := &Node{kind: KindTransform, sx: 1, sy: 1}
	if child != nil {
		n.children = []*Node{child}
	}
	return n
}

// Kind returns the variant of the node.
func (n *Node) Kind() Kind {
	return n.kind
}

// Shape returns the geometry of a shape node.
func (n *Node) Shape() Shape {
	return n.shape
}

// Points returns the vertices of a polygon node.
func (n *Node) Points() []paintkit.Point {
	return n.points
}

// Children returns the children of a group, or the single child of a
// transform node.
func (n *Node) Children() []*Node {
	return n.children
}

// WithColor sets the color used by this node and, unless they override it,
// its descendants. It returns n for chaining.
func (n *Node) WithColor(c paintkit.RGB) *Node {
	n.color = c
	n.hasColor = true
	return n
}

// Color returns the color override of the node, if any.
func (n *Node) Color() (paintkit.RGB, bool) {
	return n.color, n.hasColor
}

// SetTranslation sets the translation of a transform node.
// It returns n for chaining.
func (n *Node) SetTranslation(dx, dy float64) *Node {
	n.tx, n.ty = dx, dy
	return n
}

// SetRotation sets the rotation of a transform node, in degrees.
// It returns n for chaining.
func (n *Node) SetRotation(degrees float64) *Node {
	n.rotation = degrees
	return n
}

// SetScale sets the scale factors of a transform node.
// It returns n for chaining.
func (n *Node) SetScale(sx, sy float64) *Node {
	n.sx, n.sy = sx, sy
	return n
}

// Translation returns the translation of a transform node.
func (n *Node) Translation() (dx, dy float64) {
	return n.tx, n.ty
}

// Rotation returns the rotation of a transform node, in degrees.
func (n *Node) Rotation() float64 {
	return n.rotation
}

// Local returns the transform a node applies to its child: the child is
// scaled first, then rotated, then translated. Nodes other than transforms
// return the identity.
func (n *Node) Local() paintkit.Matrix {
	if n.kind != KindTransform {
		return paintkit.Identity()
	}
	m := paintkit.Translate(n.tx, n.ty)
	if n.rotation != 0 {
		m = m.Multiply(paintkit.RotateDegrees(n.rotation))
	}
	if n.sx != 1 || n.sy != 1 {
		m = m.Scale(n.sx, n.sy)
	}
	return m
}
