// SPDX-License-Identifier: MIT

package sequence

import "github.com/katalvlaran/chromaseq/colorspace"

// defaultHaltonBases are the first three primes, the standard choice
// for a three-dimensional Halton sequence.
var defaultHaltonBases = [3]uint32{2, 3, 5}

// VanDerCorput returns the radical inverse of n in the given base:
// the base-b digits of n reflected around the radix point.
//
//	result += (n % base) · f;  n /= base;  f /= base   (starting f = 1/base)
//
// base must be ≥ 2; smaller bases return 0 (the exported Halton entry
// points validate before calling). Result lies in [0,1).
//
// Complexity: O(log_base n).
func VanDerCorput(n, base uint32) float64 {
	if base < 2 {
		return 0
	}

	var (
		result float64
		f      = 1 / float64(base)
	)
	for n > 0 {
		result += float64(n%base) * f
		n /= base
		f /= float64(base)
	}

	return result
}

// bases resolves the Halton base triple: the zero value means the
// default primes, anything else must be three bases ≥ 2.
func (h Halton) bases() ([3]uint32, error) {
	if h.Bases == [3]uint32{} {
		return defaultHaltonBases, nil
	}
	for _, b := range h.Bases {
		if b < 2 {
			return [3]uint32{}, ErrBadParameter
		}
	}

	return h.Bases, nil
}

// haltonColor computes three radical-inverse streams, one per base, and
// maps them per the mode: direct RGB channels, or scaled HSL.
func haltonColor(h Halton, n uint32, seed int64, o Options) (colorspace.RGB, error) {
	bases, err := h.bases()
	if err != nil {
		return colorspace.RGB{}, err
	}

	var x [3]float64
	for i, b := range bases {
		x[i] = frac(float64(seed) + VanDerCorput(n, b))
	}

	return mapTriple(x, h.Mode, o), nil
}

// mapTriple maps a coordinate triple in [0,1)³ to a color. Shared by
// Halton and Sobol.
//
// ModeHSL scales the streams into hue [0,360), saturation [0.5,1] and
// lightness [0.25,0.75]; the compressed S/L ranges keep the palette
// chromatic and away from black/white.
func mapTriple(x [3]float64, mode ColorMode, _ Options) colorspace.RGB {
	if mode == ModeHSL {
		return colorspace.HSLToRGB(x[0]*360, 0.5+x[1]*0.5, 0.25+x[2]*0.5)
	}

	return colorspace.RGB{R: x[0], G: x[1], B: x[2]}
}
