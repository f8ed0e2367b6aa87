// SPDX-License-Identifier: MIT

package sequence

import (
	"math"

	"github.com/katalvlaran/chromaseq/colorspace"
)

// Color computes the color at position n of the sequence identified by
// m, for the given seed.
//
// The forward map is a pure function: identical (m, n, seed, opts)
// always produce the identical color. Coordinate formulas follow the
// engine's numeric contract exactly (see the per-method files); visual
// parameters come from opts.
//
// Errors:
//   - ErrUnknownMethod for a nil Method.
//   - ErrBadParameter for parameters outside their domain.
//
// Complexity: O(1) for the additive families, O(log n) for Halton and
// Sobol (one step per digit/bit).
func Color(m Method, n uint32, seed int64, opts ...Option) (colorspace.RGB, error) {
	o := gatherOptions(opts...)

	switch v := m.(type) {
	case Golden:
		return goldenColor(v, n, seed, o), nil
	case Plastic:
		return plasticColor(v, n, seed, o), nil
	case Halton:
		return haltonColor(v, n, seed, o)
	case RSequence:
		return rSequenceColor(v, n, seed, o)
	case Kronecker:
		return kroneckerColor(v, n, seed, o)
	case Sobol:
		return sobolColor(v, n, seed, o), nil
	case Pisot:
		return pisotColor(v, n, seed, o)
	case ContinuedFraction:
		return cfracColor(v, n, seed, o), nil
	default:
		return colorspace.RGB{}, ErrUnknownMethod
	}
}

// Generate produces count sequential colors starting at m's natural
// start index.
//
// Errors mirror Color, plus ErrBadCount for count < 0.
//
// Complexity: O(count) color computations.
func Generate(m Method, seed int64, count int, opts ...Option) ([]colorspace.RGB, error) {
	if m == nil {
		return nil, ErrUnknownMethod
	}
	if count < 0 {
		return nil, ErrBadCount
	}

	colors := make([]colorspace.RGB, 0, count)
	first := m.FirstIndex()
	for i := 0; i < count; i++ {
		c, err := Color(m, first+uint32(i), seed, opts...)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}

	return colors, nil
}

// GenerateHex is Generate quantized to the wire format: uppercase
// "#RRGGBB" strings.
func GenerateHex(m Method, seed int64, count int, opts ...Option) ([]string, error) {
	colors, err := Generate(m, seed, count, opts...)
	if err != nil {
		return nil, err
	}

	hexes := make([]string, len(colors))
	for i, c := range colors {
		hexes[i] = c.Hex()
	}

	return hexes, nil
}

// Coordinate returns the method's primary scalar stream at position n:
// the raw [0,1) value feeding the first color channel (hue for the HSL
// families, the base-2/dimension-0 stream for Halton and Sobol). The
// discrepancy analyzer ranks sequences on this stream.
func Coordinate(m Method, n uint32, seed int64) (float64, error) {
	switch v := m.(type) {
	case Golden:
		return frac(float64(seed) + float64(n)/PhiGolden), nil
	case Plastic:
		return frac(float64(seed) + float64(n)/PhiPlastic), nil
	case Halton:
		bases, err := v.bases()
		if err != nil {
			return 0, err
		}

		return frac(float64(seed) + VanDerCorput(n, bases[0])), nil
	case RSequence:
		root, err := v.root()
		if err != nil {
			return 0, err
		}

		return frac(float64(seed) + float64(n)/root), nil
	case Kronecker:
		alpha, err := v.alpha()
		if err != nil {
			return 0, err
		}

		return frac(float64(seed) + float64(n)*alpha), nil
	case Sobol:
		return frac(float64(seed) + sobolPoint(n, 0)), nil
	case Pisot:
		theta, err := v.theta()
		if err != nil {
			return 0, err
		}

		return pisotValue(theta, n, seed), nil
	case ContinuedFraction:
		return cfracValue(v.Kind, n, seed), nil
	default:
		return 0, ErrUnknownMethod
	}
}

// frac returns x - floor(x), the fractional part in [0,1).
//
// The modulo-1 reduction of the whole engine; every coordinate passes
// through here, and the floor-based definition (rather than Mod) is
// part of the numeric contract.
func frac(x float64) float64 {
	return x - math.Floor(x)
}
