// SPDX-License-Identifier: MIT

package sequence

import (
	"fmt"

	"github.com/katalvlaran/chromaseq/algebra"
	"github.com/katalvlaran/chromaseq/colorspace"
)

// defaultRSequenceDim is the dimension a zero-valued RSequence resolves
// to; d=2 reproduces the plastic constant.
const defaultRSequenceDim uint32 = 2

// maxRSequenceDim bounds the dimension. Beyond this the metallic roots
// crowd toward 1 and the streams lose their low-discrepancy advantage.
const maxRSequenceDim uint32 = 32

// root resolves the method's metallic constant φ_d via Newton's method.
// A convergence failure for a validated dimension is a programming
// error, so it panics rather than surfacing as a recoverable error.
func (r RSequence) root() (float64, error) {
	d := r.Dim
	if d == 0 {
		d = defaultRSequenceDim
	}
	if d > maxRSequenceDim {
		return 0, ErrBadParameter
	}

	root, err := algebra.MetallicRoot(d)
	if err != nil {
		panic(fmt.Sprintf("sequence: metallic root for d=%d: %v", d, err))
	}

	return root, nil
}

// rSequenceColor generalizes the Plastic mapping to dimension d:
//
//	h = frac(seed + n/φ_d)  · 360
//	s = frac(seed + n/φ_d²) · 0.5 + 0.5
//
// For d ≥ 3 the third power drives lightness as well,
// l = 0.35 + frac(seed + n/φ_d³)·0.3, giving a genuinely
// three-dimensional spread; below that the caller's lightness is used.
func rSequenceColor(r RSequence, n uint32, seed int64, o Options) (colorspace.RGB, error) {
	root, err := r.root()
	if err != nil {
		return colorspace.RGB{}, err
	}

	h := frac(float64(seed)+float64(n)/root) * 360
	s := frac(float64(seed)+float64(n)/(root*root))*0.5 + 0.5

	l := o.Lightness
	d := r.Dim
	if d == 0 {
		d = defaultRSequenceDim
	}
	if d >= 3 {
		l = 0.35 + frac(float64(seed)+float64(n)/(root*root*root))*0.3
	}

	return colorspace.HSLToRGB(h, s, l), nil
}
