// SPDX-License-Identifier: MIT

package sequence

import (
	"math"

	"github.com/katalvlaran/chromaseq/colorspace"
)

// theta resolves the Pisot base: the zero value means the golden ratio;
// anything else must be a finite number > 1.
func (p Pisot) theta() (float64, error) {
	if p.Theta == 0 {
		return PhiGolden, nil
	}
	if math.IsNaN(p.Theta) || math.IsInf(p.Theta, 0) || p.Theta <= 1 {
		return 0, ErrBadParameter
	}

	return p.Theta, nil
}

// pisotValue computes v = frac(seed + round(θ^n)), evaluation order as
// pinned: power, then round, then the seeded reduction.
//
// For a true Pisot number θ the powers approach integers exponentially
// fast, so v collapses toward frac(seed) — the quasiperiodic signature
// this generator exists to demonstrate. It is deliberately outside the
// bijection contract.
func pisotValue(theta float64, n uint32, seed int64) float64 {
	return frac(float64(seed) + math.Round(math.Pow(theta, float64(n))))
}

// pisotColor maps v onto the hue circle with fixed saturation and
// lightness.
func pisotColor(p Pisot, n uint32, seed int64, o Options) (colorspace.RGB, error) {
	theta, err := p.theta()
	if err != nil {
		return colorspace.RGB{}, err
	}

	v := pisotValue(theta, n, seed)

	return colorspace.HSLToRGB(v*360, o.Saturation, o.Lightness), nil
}
