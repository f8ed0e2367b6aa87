// SPDX-License-Identifier: MIT

package algebra

// Coefficients returns the first count partial quotients a_0..a_{count-1}
// of the chosen expansion.
//
// Patterns:
//   - CFGolden: 1, 1, 1, …
//   - CFSqrt2:  1, 2, 2, 2, …
//   - CFE:      2, then the repeating block 1, 2k, 1 for k = 1, 2, 3, …
//
// count ≤ 0 yields an empty slice. Unknown kinds fall back to CFGolden;
// the kind set is closed, so this branch is unreachable from the public
// API.
//
// Complexity: O(count).
func Coefficients(kind CFKind, count int) []uint64 {
	if count <= 0 {
		return nil
	}

	coeffs := make([]uint64, count)
	switch kind {
	case CFSqrt2:
		coeffs[0] = 1
		for i := 1; i < count; i++ {
			coeffs[i] = 2
		}
	case CFE:
		coeffs[0] = 2
		for i := 1; i < count; i++ {
			if i%3 == 2 {
				// middle of the 1,2k,1 block
				coeffs[i] = uint64(2 * ((i + 1) / 3))
			} else {
				coeffs[i] = 1
			}
		}
	default: // CFGolden
		for i := 0; i < count; i++ {
			coeffs[i] = 1
		}
	}

	return coeffs
}

// Convergent computes the k-th convergent p/q of the expansion given by
// coeffs, using the standard linear recurrence
//
//	p_i = a_i·p_{i-1} + p_{i-2}
//	q_i = a_i·q_{i-1} + q_{i-2}
//
// seeded with p_{-1}=1, q_{-1}=0, p_{-2}=0, q_{-2}=1. Indexing is
// zero-based: k=0 yields a_0/1.
//
// Returns ErrBadConvergentIndex when k is negative or beyond the
// supplied coefficients. The recurrence is exact in uint64; callers are
// responsible for keeping k small enough to avoid overflow (the
// sequence package caps it).
//
// Complexity: O(k).
func Convergent(coeffs []uint64, k int) (p, q uint64, err error) {
	if k < 0 || k >= len(coeffs) {
		return 0, 0, ErrBadConvergentIndex
	}

	var (
		pPrev2, pPrev1 uint64 = 0, 1
		qPrev2, qPrev1 uint64 = 1, 0
	)
	for i := 0; i <= k; i++ {
		p = coeffs[i]*pPrev1 + pPrev2
		q = coeffs[i]*qPrev1 + qPrev2
		pPrev2, pPrev1 = pPrev1, p
		qPrev2, qPrev1 = qPrev1, q
	}

	return p, q, nil
}
