package filter

// Kernel is a 3x3 convolution kernel in row-major order:
// index (dy+1)*3 + (dx+1) weights the neighbor at offset (dx, dy).
type Kernel [9]float64

// Filter names one of the fixed convolution kernels.
// The zero value is not a filter; applying it is a no-op.
type Filter uint8

// Filter constants.
const (
	// Blur averages the 3x3 neighborhood.
	Blur Filter = iota + 1

	// Sharpen boosts the center against its 4 direct neighbors.
	Sharpen

	// Emboss produces a diagonal relief.
	Emboss

	// EdgeDetect is the 4-neighbor Laplacian.
	EdgeDetect
)

const unknownStr = "Unknown"

// String returns the menu name of the filter.
func (f Filter) String() string {
	switch f {
	case Blur:
		return "Blur"
	case Sharpen:
		return "Sharpen"
	case Emboss:
		return "Emboss"
	case EdgeDetect:
		return "Edge Detect"
	default:
		return unknownStr
	}
}

// Kernel returns the convolution kernel of f.
// ok is false for values that are not a defined filter.
func (f Filter) Kernel() (k Kernel, ok bool) {
	switch f {
	case Blur:
		v := 1.0 / 9.0
		return Kernel{v, v, v, v, v, v, v, v, v}, true
	case Sharpen:
		v := 1.0 / 3.0
		return Kernel{0, -v, 0, -v, 7 * v, -v, 0, -v, 0}, true
	case Emboss:
		return Kernel{-2, -1, 0, -1, 1, 1, 0, 1, 2}, true
	case EdgeDetect:
		return Kernel{0, 1, 0, 1, -4, 1, 0, 1, 0}, true
	default:
		return Kernel{}, false
	}
}

// Filters returns all defined filters in menu order.
func Filters() []Filter {
	return []Filter{Blur, Sharpen, Emboss, EdgeDetect}
}
