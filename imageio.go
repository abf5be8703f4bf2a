package paintkit

import (
	"fmt"
	"image"
	"os"

	// Registered decoders for LoadImage.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes an image file in any registered format
// (PNG, JPEG, GIF, BMP, TIFF, WebP).
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("paintkit: decode %s: %w", path, err)
	}
	Logger().Debug("image decoded", "path", path, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}
