// SPDX-License-Identifier: MIT

package algebra

import "errors"

// Sentinel errors returned by the algebra helpers.
var (
	// ErrBadDimension indicates a metallic-root dimension of zero; the
	// family x^(d+1)=x+1 is defined here for d ≥ 1.
	ErrBadDimension = errors.New("algebra: metallic-root dimension must be >= 1")

	// ErrNonConvergentRoot indicates Newton's method failed to converge
	// within its iteration cap. For valid dimensions and the fixed
	// initial guess this cannot happen; treat it as a programming error,
	// not a recoverable condition.
	ErrNonConvergentRoot = errors.New("algebra: Newton iteration did not converge")

	// ErrBadConvergentIndex indicates a convergent index outside the
	// supplied coefficient list.
	ErrBadConvergentIndex = errors.New("algebra: convergent index out of range")
)

// CFKind selects a fixed continued-fraction expansion.
//
//   - CFGolden — [1;1,1,1,…], converging to φ.
//   - CFSqrt2  — [1;2,2,2,…], converging to √2.
//   - CFE      — [2;1,2,1,1,4,1,1,6,…], converging to e.
type CFKind int

const (
	// CFGolden is the all-ones expansion of the golden ratio.
	CFGolden CFKind = iota

	// CFSqrt2 is the expansion [1;2,2,2,…] of √2.
	CFSqrt2

	// CFE is the expansion [2;1,2,1,1,4,1,1,6,…] of Euler's number.
	CFE
)

// String returns the stable name of the expansion kind.
func (k CFKind) String() string {
	switch k {
	case CFGolden:
		return "golden"
	case CFSqrt2:
		return "sqrt2"
	case CFE:
		return "e"
	default:
		return "unknown"
	}
}
