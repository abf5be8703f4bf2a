package scene

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/paintkit"
)

var captionFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// newCaptionFace returns a Go Regular face of the given pixel size.
// The caller must close it.
func newCaptionFace(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("scene: invalid caption size %v", size)
	}
	f, err := captionFont()
	if err != nil {
		return nil, fmt.Errorf("scene: failed to parse caption font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("scene: failed to create caption face: %w", err)
	}
	return face, nil
}

// Caption draws text onto dst in the Go Regular font at the given size in
// pixels. (x, y) is the left end of the baseline.
func Caption(dst draw.Image, text string, x, y int, size float64, c paintkit.RGB) error {
	face, err := newCaptionFace(size)
	if err != nil {
		return err
	}
	defer func() {
		_ = face.Close()
	}()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.Color()),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	return nil
}

// CaptionWidth returns the advance width of text at the given size, in pixels.
func CaptionWidth(text string, size float64) (int, error) {
	face, err := newCaptionFace(size)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = face.Close()
	}()
	return font.MeasureString(face, text).Ceil(), nil
}
