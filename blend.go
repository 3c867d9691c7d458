package sr

import (
	"fmt"

	"github.com/gogpu/sr/internal/blend"
)

// BlendMode selects how a source color is combined with the pixel already in
// the image. All modes work on straight 8-bit RGBA.
type BlendMode uint8

const (
	// BlendDisabled replaces the destination with the source, alpha included.
	BlendDisabled BlendMode = iota

	// BlendAlpha is Porter-Duff source-over: src*a + dst*(1-a).
	BlendAlpha

	// BlendAdditive adds the alpha-weighted source to the destination.
	BlendAdditive

	// BlendSubtract subtracts the alpha-weighted source from the destination.
	BlendSubtract

	// BlendMultiply multiplies source and destination.
	BlendMultiply

	// BlendScreen is the inverse of multiplying the inverses.
	BlendScreen

	// BlendDarken keeps the darker of source and destination.
	BlendDarken

	// BlendLighten keeps the lighter of source and destination.
	BlendLighten

	// BlendDifference is |src - dst|.
	BlendDifference

	// BlendOverlay multiplies dark destinations and screens light ones.
	BlendOverlay

	blendModeCount
)

var blendFuncs = [blendModeCount]blend.Func{
	BlendDisabled:   blend.Source,
	BlendAlpha:      blend.SourceOver,
	BlendAdditive:   blend.Additive,
	BlendSubtract:   blend.Subtract,
	BlendMultiply:   blend.Multiply,
	BlendScreen:     blend.Screen,
	BlendDarken:     blend.Darken,
	BlendLighten:    blend.Lighten,
	BlendDifference: blend.Difference,
	BlendOverlay:    blend.Overlay,
}

var blendNames = [blendModeCount]string{
	BlendDisabled:   "Disabled",
	BlendAlpha:      "Alpha",
	BlendAdditive:   "Additive",
	BlendSubtract:   "Subtract",
	BlendMultiply:   "Multiply",
	BlendScreen:     "Screen",
	BlendDarken:     "Darken",
	BlendLighten:    "Lighten",
	BlendDifference: "Difference",
	BlendOverlay:    "Overlay",
}

// Blend combines src over dst. Unknown modes behave like BlendDisabled.
func (m BlendMode) Blend(src, dst Color) Color {
	if m == BlendDisabled || m >= blendModeCount {
		return src
	}
	r, g, b, a := blendFuncs[m](src.R, src.G, src.B, src.A, dst.R, dst.G, dst.B, dst.A)
	return Color{R: r, G: g, B: b, A: a}
}

// String returns the mode name.
func (m BlendMode) String() string {
	if m < blendModeCount {
		return blendNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", uint8(m))
}

// ParseBlendMode returns the mode with the given name, as printed by String.
// Matching is exact.
func ParseBlendMode(name string) (BlendMode, error) {
	for m, n := range blendNames {
		if n == name {
			return BlendMode(m), nil
		}
	}
	return BlendDisabled, fmt.Errorf("sr: unknown blend mode %q", name)
}

// BlendModes returns every defined mode in declaration order.
func BlendModes() []BlendMode {
	modes := make([]BlendMode, blendModeCount)
	for i := range modes {
		modes[i] = BlendMode(i)
	}
	return modes
}

// fn returns the blending function for m, used by the fill loops.
func (m BlendMode) fn() blend.Func {
	if m >= blendModeCount {
		return blend.Source
	}
	return blendFuncs[m]
}
