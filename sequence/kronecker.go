// SPDX-License-Identifier: MIT

package sequence

import (
	"math"

	"github.com/katalvlaran/chromaseq/colorspace"
)

// alpha resolves the Kronecker step: the zero value means √2; anything
// else must be a positive finite number. Rational α values are accepted
// (the sequence merely becomes periodic) since irrationality cannot be
// checked in floating point.
func (k Kronecker) alpha() (float64, error) {
	if k.Alpha == 0 {
		return math.Sqrt2, nil
	}
	if math.IsNaN(k.Alpha) || math.IsInf(k.Alpha, 0) || k.Alpha < 0 {
		return 0, ErrBadParameter
	}

	return k.Alpha, nil
}

// kroneckerColor maps n to hsl(frac(seed + n·α)·360, saturation,
// lightness) — the classic Weyl/Kronecker equidistributed walk.
func kroneckerColor(k Kronecker, n uint32, seed int64, o Options) (colorspace.RGB, error) {
	alpha, err := k.alpha()
	if err != nil {
		return colorspace.RGB{}, err
	}

	h := frac(float64(seed)+float64(n)*alpha) * 360

	return colorspace.HSLToRGB(h, o.Saturation, o.Lightness), nil
}
