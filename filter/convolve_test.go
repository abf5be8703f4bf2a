package filter

import (
	"testing"

	"github.com/gogpu/paintkit"
)

func TestBlurConstantImageIsFixedPoint(t *testing.T) {
	for _, c := range []paintkit.RGB{{0, 0, 0}, {255, 255, 255}, {17, 130, 201}, {1, 2, 3}} {
		r := createTestRaster(9, 7, c)
		Apply(r, Blur)
		for y := 0; y < 7; y++ {
			for x := 0; x < 9; x++ {
				if got := r.RGBAt(x, y); got != c {
					t.Fatalf("color %v: pixel (%d, %d) = %v after blur", c, x, y, got)
				}
			}
		}
	}
}

func TestFiltersLeaveBordersUntouched(t *testing.T) {
	for _, f := range Filters() {
		t.Run(f.String(), func(t *testing.T) {
			orig := noiseRaster(12, 10, 42)
			r := orig.Clone()
			Apply(r, f)
			if !bordersEqual(r, orig) {
				t.Errorf("%v modified border pixels", f)
			}
		})
	}
}

func TestZeroImageStaysZero(t *testing.T) {
	for _, f := range []Filter{Emboss, EdgeDetect, Blur, Sharpen} {
		r := paintkit.NewRaster(6, 6)
		Apply(r, f)
		for _, v := range r.Pix() {
			if v != 0 {
				t.Fatalf("%v of an all-zero image produced %d", f, v)
			}
		}
	}
}

func TestConvolveSinglePixel(t *testing.T) {
	// A lone bright pixel in a black 5x5 image.
	src := paintkit.NewRaster(5, 5)
	src.SetRGB(2, 2, paintkit.RGB{R: 90, G: 180, B: 255})

	t.Run("blur spreads evenly", func(t *testing.T) {
		r := src.Clone()
		Apply(r, Blur)
		want := paintkit.RGB{R: 10, G: 20, B: 28} // 255/9 = 28.33
		for y := 1; y <= 3; y++ {
			for x := 1; x <= 3; x++ {
				if got := r.RGBAt(x, y); got != want {
					t.Errorf("blur pixel (%d, %d) = %v, want %v", x, y, got, want)
				}
			}
		}
	})

	t.Run("edge detect takes absolute value", func(t *testing.T) {
		r := src.Clone()
		Apply(r, EdgeDetect)
		// Center: -4*v clamps to 255 for every channel.
		if got := r.RGBAt(2, 2); got != (paintkit.RGB{R: 255, G: 255, B: 255}) {
			t.Errorf("center = %v, want white", got)
		}
		// Direct neighbors see +1*v.
		if got := r.RGBAt(2, 1); got != (paintkit.RGB{R: 90, G: 180, B: 255}) {
			t.Errorf("neighbor = %v, want the source color", got)
		}
		// Diagonal neighbors have zero weight.
		if got := r.RGBAt(1, 1); got != (paintkit.RGB{}) {
			t.Errorf("diagonal = %v, want black", got)
		}
	})

	t.Run("emboss orientation", func(t *testing.T) {
		r := src.Clone()
		Apply(r, Emboss)
		// Pixel (1,1) sees the bright pixel at offset (+1,+1), weight 2.
		if got := r.RGBAt(1, 1); got != (paintkit.RGB{R: 180, G: 255, B: 255}) {
			t.Errorf("(1,1) = %v, want {180 255 255}", got)
		}
		// Pixel (3,3) sees it at offset (-1,-1), weight -2; abs gives the same.
		if got := r.RGBAt(3, 3); got != (paintkit.RGB{R: 180, G: 255, B: 255}) {
			t.Errorf("(3,3) = %v, want {180 255 255}", got)
		}
		// Pixel (3,1) sees it at offset (-1,+1), weight 0.
		if got := r.RGBAt(3, 1); got != (paintkit.RGB{}) {
			t.Errorf("(3,1) = %v, want black", got)
		}
	})
}

func TestConvolveReadsSnapshotNotPartialResult(t *testing.T) {
	// A horizontal gradient: an in-place sweep would feed already-blurred
	// pixels into later neighborhoods and drift from the snapshot result.
	src := paintkit.NewRaster(8, 3)
	for x := 0; x < 8; x++ {
		for y := 0; y < 3; y++ {
			src.SetRGB(x, y, paintkit.RGB{R: uint8(x * 30)})
		}
	}
	r := src.Clone()
	Apply(r, Blur)
	// Row 1 interior: mean of x-1, x, x+1 = 30x exactly.
	for x := 1; x < 7; x++ {
		if got := r.RGBAt(x, 1).R; got != uint8(x*30) {
			t.Errorf("pixel (%d, 1).R = %d, want %d", x, got, x*30)
		}
	}
}

func TestConvolveSameBufferMatchesSeparateBuffers(t *testing.T) {
	src := noiseRaster(10, 8, 7)
	k, _ := Sharpen.Kernel()

	dst := src.Clone()
	Convolve(dst, src, k)

	inPlace := src.Clone()
	Convolve(inPlace, inPlace, k)

	if !equalRasters(inPlace, dst) {
		t.Error("Convolve(r, r) differs from Convolve(dst, src)")
	}
}

func TestConvolveSizeMismatchIsNoop(t *testing.T) {
	dst := createTestRaster(5, 5, paintkit.Red)
	src := createTestRaster(5, 6, paintkit.Blue)
	k, _ := Blur.Kernel()
	Convolve(dst, src, k)
	if !equalRasters(dst, createTestRaster(5, 5, paintkit.Red)) {
		t.Error("Convolve with mismatched sizes modified dst")
	}
}

func TestDegenerateRasters(t *testing.T) {
	sizes := []struct{ w, h int }{{0, 0}, {1, 1}, {2, 5}, {5, 2}, {0, 9}}
	for _, s := range sizes {
		r := noiseRaster(s.w, s.h, 3)
		orig := r.Clone()
		for _, f := range Filters() {
			Apply(r, f)
		}
		if !equalRasters(r, orig) {
			t.Errorf("%dx%d raster changed; it has no interior pixels", s.w, s.h)
		}
	}
}

func TestUndefinedFilterIsNoop(t *testing.T) {
	r := noiseRaster(6, 6, 9)
	orig := r.Clone()
	Apply(r, Filter(0))
	Apply(r, Filter(99))
	if !equalRasters(r, orig) {
		t.Error("undefined filter modified the raster")
	}
}

func TestBlurTimesMatchesRepeatedApply(t *testing.T) {
	want := noiseRaster(16, 12, 11)
	got := want.Clone()
	for range 3 {
		Apply(want, Blur)
	}
	BlurTimes(got, 3)
	if !equalRasters(got, want) {
		t.Error("BlurTimes(3) differs from three Apply(Blur) calls")
	}
}

func TestBlurThenEmboss(t *testing.T) {
	want := noiseRaster(16, 12, 13)
	got := want.Clone()
	BlurTimes(want, 2)
	Apply(want, Emboss)
	BlurThenEmboss(got, 2)
	if !equalRasters(got, want) {
		t.Error("BlurThenEmboss differs from blur passes followed by emboss")
	}
}

func BenchmarkApplyBlur640x480(b *testing.B) {
	r := noiseRaster(640, 480, 1)
	b.ReportAllocs()
	for b.Loop() {
		Apply(r, Blur)
	}
}
