// SPDX-License-Identifier: MIT

package sequence

import "github.com/katalvlaran/chromaseq/colorspace"

// Sobol construction: the point at index n is the XOR of 30-bit
// direction numbers selected by the set bits of the Gray code
// g = n ^ (n>>1), normalized by 2^30. Three dimensions feed the three
// color channels.
const (
	// sobolBits is the precision of the direction numbers.
	sobolBits = 30

	// sobolScale normalizes the accumulator into [0,1).
	sobolScale = 1 << sobolBits

	// sobolDims is the number of independent dimension streams.
	sobolDims = 3
)

// sobolDirs holds the direction numbers v_k = m_k · 2^(30-k) for the
// first three dimensions. Initialized once at package load from the
// primitive-polynomial recurrences; immutable afterwards.
var sobolDirs = sobolDirections()

// sobolDirections derives the direction-number table.
//
// Dimension 0 is the van der Corput base-2 stream (m_k = 1). Dimension
// 1 uses the primitive polynomial x+1, dimension 2 uses x²+x+1, with
// the standard recurrence
//
//	m_k = 2·a₁·m_{k-1} ⊕ … ⊕ 2^s·m_{k-s} ⊕ m_{k-s}
//
// over GF(2) for a degree-s polynomial. Deriving the table instead of
// hardcoding it keeps the construction auditable against the
// polynomials.
func sobolDirections() [sobolDims][sobolBits]uint32 {
	var dirs [sobolDims][sobolBits]uint32

	// dimension 0: m_k = 1 for all k
	for k := 0; k < sobolBits; k++ {
		dirs[0][k] = 1 << (sobolBits - 1 - k)
	}

	// dimension 1: x + 1, degree 1, initial m = [1]
	m1 := [sobolBits]uint32{0: 1}
	for k := 1; k < sobolBits; k++ {
		m1[k] = 2*m1[k-1] ^ m1[k-1]
	}

	// dimension 2: x² + x + 1, degree 2 with a₁=1, initial m = [1, 1]
	m2 := [sobolBits]uint32{0: 1, 1: 1}
	for k := 2; k < sobolBits; k++ {
		m2[k] = 2*m2[k-1] ^ 4*m2[k-2] ^ m2[k-2]
	}

	for k := 0; k < sobolBits; k++ {
		dirs[1][k] = m1[k] << (sobolBits - 1 - k)
		dirs[2][k] = m2[k] << (sobolBits - 1 - k)
	}

	return dirs
}

// sobolPoint returns dimension dim of the Sobol point at index n,
// normalized into [0,1).
//
// Complexity: O(popcount bits of n) ⇒ O(log n).
func sobolPoint(n uint32, dim int) float64 {
	var acc uint32
	g := n ^ (n >> 1)
	for k := 0; g != 0 && k < sobolBits; k++ {
		if g&1 == 1 {
			acc ^= sobolDirs[dim][k]
		}
		g >>= 1
	}

	return float64(acc) / sobolScale
}

// sobolColor maps the three dimension streams to a color per the mode.
// The seed enters additively per stream, matching the frac(seed + x)
// pattern of the other families.
func sobolColor(s Sobol, n uint32, seed int64, o Options) colorspace.RGB {
	var x [3]float64
	for dim := 0; dim < sobolDims; dim++ {
		x[dim] = frac(float64(seed) + sobolPoint(n, dim))
	}

	return mapTriple(x, s.Mode, o)
}
