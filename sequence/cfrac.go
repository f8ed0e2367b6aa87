// SPDX-License-Identifier: MIT

package sequence

import (
	"fmt"

	"github.com/katalvlaran/chromaseq/algebra"
	"github.com/katalvlaran/chromaseq/colorspace"
)

// maxConvergentIndex caps the convergent order. Denominators of all
// three expansions stay comfortably inside uint64 up to this index, and
// past it p/q sits within 1e-12 of its limit, so the hue is already
// stationary.
const maxConvergentIndex = 30

// cfracValue computes frac(seed + p/q) for the n-th convergent of the
// expansion. The index is capped at maxConvergentIndex; the recurrence
// itself is exact integer arithmetic.
func cfracValue(kind algebra.CFKind, n uint32, seed int64) float64 {
	k := int(n)
	if k > maxConvergentIndex {
		k = maxConvergentIndex
	}

	coeffs := algebra.Coefficients(kind, k+1)
	p, q, err := algebra.Convergent(coeffs, k)
	if err != nil {
		// coeffs always has k+1 entries; an index error here is a bug
		panic(fmt.Sprintf("sequence: convergent %d of %s: %v", k, kind, err))
	}

	return frac(float64(seed) + float64(p)/float64(q))
}

// cfracColor maps the convergent stream onto the hue circle with fixed
// saturation and lightness. Convergents alternate around their limit
// with rapidly shrinking steps, so the first few indices fan out and
// the tail converges to a single hue.
func cfracColor(c ContinuedFraction, n uint32, seed int64, o Options) colorspace.RGB {
	v := cfracValue(c.Kind, n, seed)

	return colorspace.HSLToRGB(v*360, o.Saturation, o.Lightness)
}
