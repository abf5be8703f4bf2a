package scene

import (
	"testing"

	"github.com/gogpu/paintkit"
)

func TestDrawProcedural(t *testing.T) {
	r := paintkit.NewRaster(DefaultWidth, DefaultHeight)
	DrawProcedural(r, 0)

	for _, lm := range sceneLandmarks {
		x, y := worldPixel(lm.x, lm.y)
		if got := r.RGBAt(x, y); got != lm.color {
			t.Errorf("%s at pixel (%d, %d) = %v, want %v", lm.name, x, y, got, lm.color)
		}
	}
	if got := r.RGBAt(0, 0); got != skyColor {
		t.Errorf("top-left = %v, want sky", got)
	}
}

func TestDrawProceduralCartMoves(t *testing.T) {
	x, y := worldPixel(3.5, 0.3)
	tests := []struct {
		frame int
		want  paintkit.RGB
	}{
		{0, roadColor},
		{150, paintkit.Red},
		{300, roadColor},
		{450, paintkit.Red},
	}
	for _, tt := range tests {
		r := paintkit.NewRaster(DefaultWidth, DefaultHeight)
		DrawProcedural(r, tt.frame)
		if got := r.RGBAt(x, y); got != tt.want {
			t.Errorf("frame %d: pixel (%d, %d) = %v, want %v", tt.frame, x, y, got, tt.want)
		}
	}
}

func TestDrawProceduralAnimates(t *testing.T) {
	a := paintkit.NewRaster(350, 250)
	b := paintkit.NewRaster(350, 250)
	DrawProcedural(a, 10)
	DrawProcedural(b, 10)
	if !equalRasters(a, b) {
		t.Error("the same frame rendered differently")
	}

	DrawProcedural(b, 11)
	if equalRasters(a, b) {
		t.Error("consecutive frames are identical")
	}
}

func BenchmarkDrawProcedural(b *testing.B) {
	r := paintkit.NewRaster(DefaultWidth, DefaultHeight)
	frame := 0
	for b.Loop() {
		DrawProcedural(r, frame)
		frame++
	}
}

func BenchmarkWorldRender(b *testing.B) {
	r := paintkit.NewRaster(DefaultWidth, DefaultHeight)
	w := NewWorld()
	for b.Loop() {
		w.Advance()
		w.Render(r)
	}
}
