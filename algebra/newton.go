// SPDX-License-Identifier: MIT

package algebra

import "math"

// Newton iteration policy for MetallicRoot. The guess sits inside (1,2)
// where f(x)=x^(d+1)-x-1 is convex for every d ≥ 1, so convergence is
// quadratic and the cap is generous.
const (
	// newtonGuess is the fixed initial guess.
	newtonGuess = 1.5

	// newtonTolerance stops the iteration once |Δx| < newtonTolerance.
	newtonTolerance = 1e-10

	// newtonMaxIterations caps the iteration count.
	newtonMaxIterations = 20
)

// MetallicRoot finds the unique real root >1 of f(x) = x^(d+1) - x - 1
// by Newton's method from the fixed guess 1.5.
//
// d=1 yields the golden ratio φ ≈ 1.6180, d=2 the plastic constant
// φ₂ ≈ 1.3247, and larger d the flatter members of the family used by
// the R-sequence generator.
//
// Returns ErrBadDimension for d==0 and ErrNonConvergentRoot if the
// iteration cap is exhausted; the latter indicates a programming error
// and never occurs for valid dimensions.
//
// Complexity: O(newtonMaxIterations) ⇒ O(1).
func MetallicRoot(d uint32) (float64, error) {
	if d == 0 {
		return 0, ErrBadDimension
	}

	deg := float64(d + 1)
	x := newtonGuess
	for i := 0; i < newtonMaxIterations; i++ {
		fx := math.Pow(x, deg) - x - 1
		dfx := deg*math.Pow(x, deg-1) - 1
		dx := fx / dfx
		x -= dx
		if math.Abs(dx) < newtonTolerance {
			return x, nil
		}
	}

	return 0, ErrNonConvergentRoot
}
