// SPDX-License-Identifier: MIT

package sequence

import "github.com/katalvlaran/chromaseq/colorspace"

// goldenColor maps n to hsl(frac(seed + n/φ)·360, saturation, lightness).
//
// The golden ratio is the "most irrational" constant (its continued
// fraction is all ones), so consecutive hues land maximally far apart —
// the classic distinguishable-palette walk.
func goldenColor(_ Golden, n uint32, seed int64, o Options) colorspace.RGB {
	h := frac(float64(seed)+float64(n)/PhiGolden) * 360

	return colorspace.HSLToRGB(h, o.Saturation, o.Lightness)
}
