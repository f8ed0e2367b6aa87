// SPDX-License-Identifier: MIT

package sequence

import "github.com/katalvlaran/chromaseq/colorspace"

// plasticColor drives two channels from the plastic constant:
//
//	h = frac(seed + n/φ₂)  · 360
//	s = frac(seed + n/φ₂²) · 0.5 + 0.5
//
// φ₂ and φ₂² are the optimal two-dimensional additive recurrence, so
// (hue, saturation) pairs cover their rectangle more evenly than either
// channel alone. Saturation is compressed into [0.5,1] to keep every
// color clearly chromatic.
func plasticColor(_ Plastic, n uint32, seed int64, o Options) colorspace.RGB {
	h := frac(float64(seed)+float64(n)/PhiPlastic) * 360
	s := frac(float64(seed)+float64(n)/(PhiPlastic*PhiPlastic))*0.5 + 0.5

	return colorspace.HSLToRGB(h, s, o.Lightness)
}
