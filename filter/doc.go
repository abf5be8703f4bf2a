// Package filter implements 3x3 convolution filters on a paintkit.Raster.
//
// Every filter replaces each color channel of each interior pixel with the
// absolute value of a weighted sum over its 3x3 neighborhood, clamped to 255
// and rounded. Border pixels are never written, so the neighborhood of every
// written pixel lies inside the raster.
//
// Kernel reads always come from a frozen snapshot of the pre-filter image, so
// the result does not depend on the order pixels are written in. This is what
// lets [Engine] split the sweep into row bands and run them concurrently.
//
// Available filters:
//   - Blur: uniform 3x3 average
//   - Sharpen: center-weighted Laplacian sharpen
//   - Emboss: diagonal relief
//   - EdgeDetect: 4-neighbor Laplacian
//
// Presets bundle the menu entries, including the composite
// "Blur 5 Times" and "Blur 5, Emboss".
package filter
