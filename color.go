package paintkit

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
)

// RGB is an opaque color with 8-bit red, green and blue channels.
type RGB struct {
	R, G, B uint8
}

// Color converts c to the standard color.Color interface.
func (c RGB) Color() color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// FromColor converts a standard color.Color to RGB.
// Translucent colors are composited over black.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Hex returns c formatted as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Common colors
var (
	Black     = RGB{0, 0, 0}
	White     = RGB{255, 255, 255}
	Red       = RGB{255, 0, 0}
	Green     = RGB{0, 255, 0}
	Blue      = RGB{0, 0, 255}
	Cyan      = RGB{0, 255, 255}
	Magenta   = RGB{255, 0, 255}
	Yellow    = RGB{255, 255, 0}
	Gray      = RGB{128, 128, 128}
	LightGray = RGB{192, 192, 192}
)

// PaletteColor is a named entry of the drawing palette.
type PaletteColor struct {
	Name  string
	Color RGB
}

// palette lists the drawing colors in menu order.
var palette = []PaletteColor{
	{"Black", Black},
	{"Red", Red},
	{"Green", Green},
	{"Blue", Blue},
	{"Cyan", Cyan},
	{"Yellow", Yellow},
	{"Magenta", Magenta},
	{"Gray", Gray},
}

// Palette returns a copy of the named drawing colors in menu order.
func Palette() []PaletteColor {
	out := make([]PaletteColor, len(palette))
	copy(out, palette)
	return out
}

// FoldName normalizes a menu or command name for comparison:
// surrounding space is trimmed and case is folded.
// It is safe for concurrent use.
func FoldName(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// ParseColor resolves a palette name (any case) or a "#rgb"/"#rrggbb" hex string.
func ParseColor(s string) (RGB, error) {
	name := FoldName(s)
	for _, p := range palette {
		if FoldName(p.Name) == name {
			return p.Color, nil
		}
	}
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		r, g, b := c.RGB255()
		return RGB{R: r, G: g, B: b}, nil
	}
	return RGB{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}
