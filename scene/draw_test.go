package scene

import (
	"testing"

	"github.com/gogpu/paintkit"
)

func whiteCanvas(w, h int) *paintkit.Raster {
	r := paintkit.NewRaster(w, h)
	r.Fill(paintkit.White)
	return r
}

// pixelView maps a unit square to an 8x8 pixel block centered at (20, 20).
var pixelView = paintkit.Translate(20, 20).Scale(8, 8)

func TestDrawFilledRect(t *testing.T) {
	r := whiteCanvas(40, 40)
	Draw(r, FilledRect(), pixelView, Style{Color: paintkit.Red, LineWidth: 0.125})

	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			want := paintkit.White
			if x >= 16 && x < 24 && y >= 16 && y < 24 {
				want = paintkit.Red
			}
			if got := r.RGBAt(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawColorInheritance(t *testing.T) {
	root := Group(
		Transformed(FilledRect()).SetTranslation(-1.5, 0),
		Transformed(FilledRect()).SetTranslation(0, 0).WithColor(paintkit.Green),
		Group(Transformed(FilledRect()).SetTranslation(1.5, 0)).WithColor(paintkit.Red),
	).WithColor(paintkit.Blue)

	r := whiteCanvas(40, 40)
	Draw(r, root, pixelView, Style{Color: paintkit.Black, LineWidth: 0.125})

	tests := []struct {
		x, y int
		want paintkit.RGB
	}{
		{8, 20, paintkit.Blue},
		{20, 20, paintkit.Green},
		{32, 20, paintkit.Red},
		{20, 5, paintkit.White},
	}
	for _, tt := range tests {
		if got := r.RGBAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawStyleColorIsDefault(t *testing.T) {
	r := whiteCanvas(40, 40)
	Draw(r, FilledCircle(), pixelView, Style{Color: paintkit.Magenta, LineWidth: 0.125})
	if got := r.RGBAt(20, 20); got != paintkit.Magenta {
		t.Errorf("center = %v, want magenta", got)
	}
}

func TestDrawSharedNode(t *testing.T) {
	dot := Transformed(FilledCircle()).SetScale(0.5, 0.5)
	root := Group(
		Transformed(dot).SetTranslation(-1.5, 0),
		Transformed(dot).SetTranslation(1.5, 0),
	)
	r := whiteCanvas(40, 40)
	Draw(r, root, pixelView, Style{Color: paintkit.Black, LineWidth: 0.125})

	for _, x := range []int{8, 32} {
		if got := r.RGBAt(x, 20); got != paintkit.Black {
			t.Errorf("pixel (%d, 20) = %v, want black", x, got)
		}
	}
	if got := r.RGBAt(20, 20); got != paintkit.White {
		t.Errorf("pixel between the dots = %v, want white", got)
	}
}

func TestDrawNestedTransforms(t *testing.T) {
	// Rotating a unit line by 90 degrees and scaling it by 2 makes it run
	// from (0, 0) to (0, 2) in root units.
	inner := Transformed(Line()).SetRotation(90)
	root := Transformed(inner).SetScale(2, 2)

	r := whiteCanvas(40, 40)
	Draw(r, root, pixelView, Style{Color: paintkit.Black, LineWidth: 0.25})

	for y := 22; y < 34; y++ {
		if got := r.RGBAt(20, y); got == paintkit.White {
			t.Errorf("pixel (20, %d) not drawn", y)
		}
	}
	if got := r.RGBAt(30, 20); got != paintkit.White {
		t.Errorf("pixel (30, 20) = %v, want white", got)
	}
}

func TestDrawOutlines(t *testing.T) {
	tests := []struct {
		name string
		node *Node
	}{
		{"rect", Transformed(Rect()).SetScale(3, 3)},
		{"circle", Transformed(Circle()).SetScale(3, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := whiteCanvas(40, 40)
			Draw(r, tt.node, pixelView, Style{Color: paintkit.Black, LineWidth: 0.125})

			if got := r.RGBAt(20, 20); got != paintkit.White {
				t.Errorf("inside = %v, want white", got)
			}
			if got := r.RGBAt(20, 8); got == paintkit.White {
				t.Error("top edge not drawn")
			}
		})
	}
}

func TestDrawNilAndEmpty(t *testing.T) {
	r := whiteCanvas(10, 10)
	before := r.Clone()
	Draw(r, nil, paintkit.Identity(), Style{})
	Draw(r, Group(), paintkit.Identity(), Style{})
	Draw(r, Transformed(nil), paintkit.Identity(), Style{})
	Draw(r, Polygon(paintkit.Pt(1, 1), paintkit.Pt(5, 5)), paintkit.Identity(), Style{})
	if !equalRasters(r, before) {
		t.Error("drawing empty graphs changed pixels")
	}
}
