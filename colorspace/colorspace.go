// SPDX-License-Identifier: MIT

package colorspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color with each channel in [0,1].
//
// The continuous representation is the working domain of the engine;
// 8-bit quantization happens only at the hex boundary (RGB.Hex) and is
// lossy. Distance comparisons during inversion must operate on RGB
// values, never on quantized hex strings.
type RGB struct {
	R, G, B float64
}

// HSLToRGB converts HSL coordinates to RGB using the standard six-sector
// piecewise formula.
//
// Inputs:
//   - h: hue in degrees; any finite value is accepted and wrapped into [0,360).
//   - s: saturation in [0,1]; values outside are clamped.
//   - l: lightness in [0,1]; values outside are clamped.
//
// The evaluation order is part of the engine's numeric contract:
//
//	c = (1 - |2l - 1|) · s
//	x = c · (1 - |h/60 mod 2 - 1|)
//	m = l - c/2
//
// Complexity: O(1).
func HSLToRGB(h, s, l float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp01(s)
	l = clamp01(l)

	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2

	return RGB{R: r + m, G: g + m, B: b + m}
}

// Distance returns the Euclidean distance between a and b in the unit
// RGB cube. Range: [0, √3].
//
// This is the metric of the inversion contract; tolerance thresholds in
// the invert package are expressed in these units.
//
// Complexity: O(1).
func Distance(a, b RGB) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B

	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// DistanceLab returns the CIE-L*a*b* distance between a and b.
//
// Unlike Distance, Lab distance approximates perceived difference. The
// scale is normalized (L in [0,1], whole-gamut distances below ~1.5):
// values around 0.023 correspond to a just-noticeable difference, the
// classic ΔE ≈ 2.3 divided by 100. Both colors are clamped into the
// unit cube before conversion.
//
// Complexity: O(1).
func DistanceLab(a, b RGB) float64 {
	ca := colorful.Color{R: clamp01(a.R), G: clamp01(a.G), B: clamp01(a.B)}
	cb := colorful.Color{R: clamp01(b.R), G: clamp01(b.G), B: clamp01(b.B)}

	return ca.DistanceLab(cb)
}

// Clamped returns a copy of c with every channel clamped into [0,1].
func (c RGB) Clamped() RGB {
	return RGB{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// clamp01 clamps v into [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
