package filter

import (
	"fmt"

	"github.com/gogpu/paintkit"
)

// Preset identifies an entry of the filter menu.
// A preset is one or more filter passes run in sequence.
type Preset uint8

// Preset constants, in menu order.
const (
	// PresetNone runs nothing.
	PresetNone Preset = iota

	PresetBlur
	PresetSharpen
	PresetEmboss
	PresetEdgeDetect

	// PresetBlur5Times blurs five times in a row.
	PresetBlur5Times

	// PresetBlur5Emboss blurs five times, then embosses once.
	PresetBlur5Emboss
)

// compositeBlurPasses is the blur count of the composite presets.
const compositeBlurPasses = 5

// String returns the menu name of the preset.
func (p Preset) String() string {
	switch p {
	case PresetNone:
		return "None"
	case PresetBlur:
		return Blur.String()
	case PresetSharpen:
		return Sharpen.String()
	case PresetEmboss:
		return Emboss.String()
	case PresetEdgeDetect:
		return EdgeDetect.String()
	case PresetBlur5Times:
		return "Blur 5 Times"
	case PresetBlur5Emboss:
		return "Blur 5, Emboss"
	default:
		return unknownStr
	}
}

// Passes returns the filters the preset runs, in order.
func (p Preset) Passes() []Filter {
	switch p {
	case PresetBlur:
		return []Filter{Blur}
	case PresetSharpen:
		return []Filter{Sharpen}
	case PresetEmboss:
		return []Filter{Emboss}
	case PresetEdgeDetect:
		return []Filter{EdgeDetect}
	case PresetBlur5Times:
		return repeat(Blur, compositeBlurPasses)
	case PresetBlur5Emboss:
		return append(repeat(Blur, compositeBlurPasses), Emboss)
	default:
		return nil
	}
}

func repeat(f Filter, n int) []Filter {
	out := make([]Filter, n)
	for i := range out {
		out[i] = f
	}
	return out
}

// Presets returns the menu presets in order, excluding PresetNone.
func Presets() []Preset {
	return []Preset{
		PresetBlur, PresetSharpen, PresetEmboss, PresetEdgeDetect,
		PresetBlur5Times, PresetBlur5Emboss,
	}
}

// ParsePreset resolves a menu name, ignoring case and surrounding space.
// Unknown names return an error wrapping paintkit.ErrUnknownFilter.
func ParsePreset(name string) (Preset, error) {
	folded := paintkit.FoldName(name)
	for _, p := range Presets() {
		if paintkit.FoldName(p.String()) == folded {
			return p, nil
		}
	}
	return PresetNone, fmt.Errorf("%w: %q", paintkit.ErrUnknownFilter, name)
}

// Run applies every pass of preset p to r.
func Run(r *paintkit.Raster, p Preset) {
	for _, f := range p.Passes() {
		Apply(r, f)
	}
}
