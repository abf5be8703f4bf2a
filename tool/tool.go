// Package tool implements the paint program's drawing tools: the shape
// tools, the smudge and erase point tools, and the line walker that feeds
// drag paths to the point tools.
package tool

import (
	"fmt"

	"github.com/gogpu/paintkit"
)

// Kind identifies a drawing tool.
type Kind uint8

// Tool kinds, in menu order.
const (
	// Sketch draws freehand strokes along the drag path.
	Sketch Kind = iota

	// Line draws a straight stroke from drag start to drag end.
	Line

	// Rectangle fills the rectangle spanned by the drag.
	Rectangle

	// Oval fills the ellipse inscribed in the rectangle spanned by the drag.
	Oval

	// Smudge mixes paint held by the tool with the image along the drag path.
	Smudge

	// Erase clears a square around every point of the drag path.
	Erase
)

const unknownStr = "Unknown"

// String returns the menu name of the tool.
func (k Kind) String() string {
	switch k {
	case Sketch:
		return "Sketch"
	case Line:
		return "Line"
	case Rectangle:
		return "Rectangle"
	case Oval:
		return "Oval"
	case Smudge:
		return "Smudge"
	case Erase:
		return "Erase"
	default:
		return unknownStr
	}
}

// IsShape reports whether the tool draws one shape from drag start to drag end.
func (k Kind) IsShape() bool {
	switch k {
	case Line, Rectangle, Oval:
		return true
	default:
		return false
	}
}

// IsPointTool reports whether the tool is applied at every point of the drag path.
func (k Kind) IsPointTool() bool {
	switch k {
	case Smudge, Erase:
		return true
	default:
		return false
	}
}

// Kinds returns all tools in menu order.
func Kinds() []Kind {
	return []Kind{Sketch, Line, Rectangle, Oval, Smudge, Erase}
}

// ParseKind resolves a menu name, ignoring case and surrounding space.
// Unknown names return an error wrapping paintkit.ErrUnknownTool.
func ParseKind(name string) (Kind, error) {
	folded := paintkit.FoldName(name)
	for _, k := range Kinds() {
		if paintkit.FoldName(k.String()) == folded {
			return k, nil
		}
	}
	return Sketch, fmt.Errorf("%w: %q", paintkit.ErrUnknownTool, name)
}
