package scene

import (
	"testing"

	"github.com/gogpu/paintkit"
)

func TestCaption(t *testing.T) {
	r := whiteCanvas(200, 50)
	if err := Caption(r, "Frame 42", 5, 35, 24, paintkit.Black); err != nil {
		t.Fatalf("Caption() error = %v", err)
	}

	inked := 0
	for y := 0; y < 50; y++ {
		for x := 0; x < 200; x++ {
			if r.RGBAt(x, y) != paintkit.White {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("Caption() drew nothing")
	}
	if got := r.RGBAt(150, 10); got != paintkit.White {
		t.Errorf("pixel right of the text = %v, want white", got)
	}
}

func TestCaptionInvalidSize(t *testing.T) {
	r := whiteCanvas(10, 10)
	for _, size := range []float64{0, -3} {
		if err := Caption(r, "x", 0, 5, size, paintkit.Black); err == nil {
			t.Errorf("Caption(size=%v) error = nil", size)
		}
	}
}

func TestCaptionWidth(t *testing.T) {
	short, err := CaptionWidth("Hello", 20)
	if err != nil {
		t.Fatalf("CaptionWidth() error = %v", err)
	}
	long, err := CaptionWidth("Hello, world", 20)
	if err != nil {
		t.Fatalf("CaptionWidth() error = %v", err)
	}
	if short <= 0 || long <= short {
		t.Errorf("CaptionWidth() = %d, %d, want 0 < short < long", short, long)
	}
	if w, _ := CaptionWidth("", 20); w != 0 {
		t.Errorf("CaptionWidth(\"\") = %d, want 0", w)
	}
}
