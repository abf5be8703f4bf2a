package fill

import (
	"image"
	"testing"

	"github.com/gogpu/paintkit"
)

func newCanvas(w, h int) *paintkit.Raster {
	r := paintkit.NewRaster(w, h)
	r.Fill(paintkit.White)
	return r
}

func TestFillRectPixelAligned(t *testing.T) {
	r := newCanvas(10, 10)
	New(r).FillRect(paintkit.Identity(), 2, 3, 4, 5, paintkit.Red)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := paintkit.White
			if x >= 2 && x < 6 && y >= 3 && y < 8 {
				want = paintkit.Red
			}
			if got := r.RGBAt(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillRectUnderTransform(t *testing.T) {
	r := newCanvas(20, 20)
	m := paintkit.Translate(10, 10).Multiply(paintkit.Scale(4, 4))
	New(r).FillRect(m, -0.5, -0.5, 1, 1, paintkit.Blue)

	if got := r.RGBAt(9, 9); got != paintkit.Blue {
		t.Errorf("center pixel = %v, want blue", got)
	}
	if got := r.RGBAt(8, 8); got != paintkit.Blue {
		t.Errorf("pixel (8,8) = %v, want blue", got)
	}
	if got := r.RGBAt(12, 12); got != paintkit.White {
		t.Errorf("pixel (12,12) = %v, want white", got)
	}
}

func TestFillEllipse(t *testing.T) {
	r := newCanvas(40, 40)
	New(r).FillEllipse(paintkit.Identity(), paintkit.Pt(20, 20), 10, 6, paintkit.Green)

	if got := r.RGBAt(20, 20); got != paintkit.Green {
		t.Errorf("center = %v, want green", got)
	}
	if got := r.RGBAt(27, 20); got != paintkit.Green {
		t.Errorf("inside on major axis = %v, want green", got)
	}
	// The bounding-box corner lies outside the ellipse.
	if got := r.RGBAt(11, 15); got != paintkit.White {
		t.Errorf("box corner = %v, want white", got)
	}
	if got := r.RGBAt(20, 30); got != paintkit.White {
		t.Errorf("outside minor axis = %v, want white", got)
	}
}

func TestStrokeLineRoundCaps(t *testing.T) {
	r := newCanvas(30, 15)
	New(r).StrokeLine(paintkit.Identity(), paintkit.Pt(5.5, 7.5), paintkit.Pt(24.5, 7.5), 5, paintkit.Black)

	for x := 5; x <= 24; x++ {
		if got := r.RGBAt(x, 7); got != paintkit.Black {
			t.Errorf("pixel (%d, 7) = %v, want black", x, got)
		}
	}
	// Round caps extend width/2 past the endpoints.
	if got := r.RGBAt(3, 7); got == paintkit.White {
		t.Error("cap pixel (3, 7) untouched")
	}
	if got := r.RGBAt(15, 1); got != paintkit.White {
		t.Errorf("pixel (15, 1) = %v, want white", got)
	}
}

func TestStrokeZeroLengthDrawsDot(t *testing.T) {
	r := newCanvas(10, 10)
	New(r).StrokeLine(paintkit.Identity(), paintkit.Pt(5, 5), paintkit.Pt(5, 5), 4, paintkit.Red)
	if got := r.RGBAt(5, 5); got == paintkit.White {
		t.Error("zero-length stroke drew nothing")
	}
}

func TestStrokeRectLeavesInsideEmpty(t *testing.T) {
	r := newCanvas(30, 30)
	New(r).StrokeRect(paintkit.Identity(), 5, 5, 20, 20, 2, paintkit.Black)

	if got := r.RGBAt(15, 15); got != paintkit.White {
		t.Errorf("inside = %v, want white", got)
	}
	if got := r.RGBAt(15, 5); got == paintkit.White {
		t.Error("top edge untouched")
	}
}

func TestOffCanvasShapesAreClipped(t *testing.T) {
	r := newCanvas(10, 10)
	p := New(r)
	p.FillRect(paintkit.Identity(), -50, -50, 20, 20, paintkit.Red)
	p.FillEllipse(paintkit.Identity(), paintkit.Pt(100, 100), 5, 5, paintkit.Red)
	p.StrokeLine(paintkit.Identity(), paintkit.Pt(-20, 50), paintkit.Pt(40, 50), 3, paintkit.Red)

	if !equalRasters(r, newCanvas(10, 10)) {
		t.Error("off-canvas shapes modified the raster")
	}

	// Partially visible rect fills exactly the visible part.
	p.FillRect(paintkit.Identity(), -5, -5, 8, 8, paintkit.Red)
	if got := r.RGBAt(0, 0); got != paintkit.Red {
		t.Errorf("(0,0) = %v, want red", got)
	}
	if got := r.RGBAt(3, 3); got != paintkit.White {
		t.Errorf("(3,3) = %v, want white", got)
	}
}

func TestPainterOnOffsetImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 20, 20))
	New(img).FillRect(paintkit.Identity(), 10, 10, 5, 5, paintkit.Red)
	if got := img.RGBAAt(12, 12); got.R != 255 || got.A != 255 {
		t.Errorf("pixel (12,12) = %v, want opaque red", got)
	}
	if got := img.RGBAAt(17, 17); got.A != 0 {
		t.Errorf("pixel (17,17) = %v, want untouched", got)
	}
}

func TestClipPolygon(t *testing.T) {
	square := []paintkit.Point{{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5}}
	got := clipPolygon(square, 10, 10, image.Point{})
	for _, p := range got {
		if p.X < 0 || p.X > 10 || p.Y < 0 || p.Y > 10 {
			t.Errorf("clipped point %v outside bounds", p)
		}
	}
	if len(got) != 4 {
		t.Errorf("clipped corner square has %d points, want 4", len(got))
	}

	outside := []paintkit.Point{{X: 20, Y: 20}, {X: 30, Y: 20}, {X: 30, Y: 30}}
	if got := clipPolygon(outside, 10, 10, image.Point{}); len(got) != 0 {
		t.Errorf("fully outside polygon clipped to %v, want empty", got)
	}
}
