package paintkit

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/anthonynsimon/bild/clone"
)

// Raster is an opaque RGB pixel buffer addressed by integer coordinates.
// The origin is the top-left pixel.
//
// Raster implements image.Image and draw.Image, so the x/image
// scalers, rasterizers and font drawers can render into it directly.
type Raster struct {
	width  int
	height int
	pix    []uint8 // RGB, 3 bytes per pixel, row-major
}

// NewRaster creates a black raster with the given dimensions.
// Negative dimensions are treated as zero.
func NewRaster(width, height int) *Raster {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}
}

// Width returns the width of the raster.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the height of the raster.
func (r *Raster) Height() int {
	return r.height
}

// Pix returns the raw pixel data (RGB, 3 bytes per pixel).
func (r *Raster) Pix() []uint8 {
	return r.pix
}

// In reports whether (x, y) addresses a pixel of the raster.
func (r *Raster) In(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// RGBAt returns the color of a single pixel.
// Out-of-bounds coordinates return black.
func (r *Raster) RGBAt(x, y int) RGB {
	if !r.In(x, y) {
		return RGB{}
	}
	i := (y*r.width + x) * 3
	return RGB{R: r.pix[i], G: r.pix[i+1], B: r.pix[i+2]}
}

// SetRGB sets the color of a single pixel.
// Out-of-bounds coordinates are ignored.
func (r *Raster) SetRGB(x, y int, c RGB) {
	if !r.In(x, y) {
		return
	}
	i := (y*r.width + x) * 3
	r.pix[i+0] = c.R
	r.pix[i+1] = c.G
	r.pix[i+2] = c.B
}

// Fill sets every pixel to c.
func (r *Raster) Fill(c RGB) {
	for i := 0; i < len(r.pix); i += 3 {
		r.pix[i+0] = c.R
		r.pix[i+1] = c.G
		r.pix[i+2] = c.B
	}
}

// FillRect fills the w-by-h rectangle with top-left corner (x, y).
// The rectangle is clipped to the raster.
func (r *Raster) FillRect(x, y, w, h int, c RGB) {
	rect := image.Rect(x, y, x+w, y+h).Intersect(r.Bounds())
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		i := (py*r.width + rect.Min.X) * 3
		for px := rect.Min.X; px < rect.Max.X; px++ {
			r.pix[i+0] = c.R
			r.pix[i+1] = c.G
			r.pix[i+2] = c.B
			i += 3
		}
	}
}

// Clone returns an independent copy of the raster.
func (r *Raster) Clone() *Raster {
	out := &Raster{
		width:  r.width,
		height: r.height,
		pix:    make([]uint8, len(r.pix)),
	}
	copy(out.pix, r.pix)
	return out
}

// CopyFrom overwrites r with the contents of src.
// It reports false and leaves r unchanged if the sizes differ.
func (r *Raster) CopyFrom(src *Raster) bool {
	if src.width != r.width || src.height != r.height {
		return false
	}
	copy(r.pix, src.pix)
	return true
}

// ToImage converts the raster to an opaque image.RGBA.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for i, j := 0, 0; i < len(r.pix); i, j = i+3, j+4 {
		img.Pix[j+0] = r.pix[i+0]
		img.Pix[j+1] = r.pix[i+1]
		img.Pix[j+2] = r.pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// FromImage creates a raster from an image.
// Translucent pixels are composited over black.
func FromImage(img image.Image) *Raster {
	rgba := clone.AsRGBA(img)
	bounds := rgba.Bounds()
	r := NewRaster(bounds.Dx(), bounds.Dy())
	for y := 0; y < r.height; y++ {
		src := rgba.Pix[y*rgba.Stride:]
		dst := r.pix[y*r.width*3:]
		for x := 0; x < r.width; x++ {
			// image.RGBA is premultiplied, so dropping alpha composites over black.
			dst[x*3+0] = src[x*4+0]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}
	return r
}

// SavePNG saves the raster to a PNG file.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, r.ToImage())
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	c := r.RGBAt(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return color.RGBAModel
}

// Set implements the draw.Image interface.
// Alpha is discarded; callers compositing translucent color must blend first,
// as the x/image rasterizers do.
func (r *Raster) Set(x, y int, c color.Color) {
	r.SetRGB(x, y, FromColor(c))
}
