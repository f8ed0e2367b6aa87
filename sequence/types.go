// SPDX-License-Identifier: MIT

// Package sequence: method variants, configuration options and sentinel
// errors for the low-discrepancy generators. This file defines:
//   - the closed Method variant set (one struct per sequence family),
//   - documented defaults (constants),
//   - functional options for the visual parameters,
//   - sentinel errors shared by every generator.
//
// Design goals:
//   - Deterministic behavior: no global state, the seed is an explicit
//     parameter on every call.
//   - Closed dispatch: Method is sealed by an unexported method, so
//     Color and the inversion engine match variants exhaustively.
//   - Zero-value usability: a zero-valued variant resolves its
//     parameters to the documented defaults.
package sequence

import (
	"errors"
	"math"

	"github.com/katalvlaran/chromaseq/algebra"
)

// Sentinel errors returned by the generators.
var (
	// ErrUnknownMethod indicates a nil Method. The variant set is closed,
	// so any non-nil Method constructed from this package dispatches.
	ErrUnknownMethod = errors.New("sequence: unknown or nil method")

	// ErrBadParameter indicates a method parameter outside its domain
	// (base < 2, α not a positive finite number, θ ≤ 1, and so on).
	ErrBadParameter = errors.New("sequence: method parameter out of range")

	// ErrBadCount indicates a negative sample count passed to Generate.
	ErrBadCount = errors.New("sequence: count must be non-negative")
)

// Mathematical constants of the engine. PhiGolden and PhiPlastic are
// pinned to these exact literals; do not substitute recomputed values,
// cross-implementation agreement depends on them.
const (
	// PhiGolden is the golden ratio φ, the d=1 metallic constant.
	PhiGolden = 1.618033988749895

	// PhiPlastic is the plastic constant φ₂, the real root >1 of x³=x+1.
	PhiPlastic = 1.3247179572447460259609088544780973
)

// Visual defaults. Saturation and lightness exist only to keep generated
// colors visually distinguishable; they are configuration, not part of
// the mathematical contract.
const (
	// DefaultLightness is the HSL lightness used unless overridden.
	DefaultLightness = 0.5

	// DefaultSaturation is the HSL saturation for fixed-saturation
	// methods (Golden, Kronecker, Pisot, ContinuedFraction).
	DefaultSaturation = 0.7
)

// ColorMode selects how multi-dimensional methods (Halton, Sobol) map
// their coordinate vector to a color.
//
//   - ModeRGB — coordinates feed the R, G, B channels directly.
//   - ModeHSL — coordinates are scaled into (hue, saturation, lightness).
type ColorMode int

const (
	// ModeRGB maps the three coordinate streams directly onto R, G, B.
	ModeRGB ColorMode = iota

	// ModeHSL scales the streams into hue [0,360), saturation [0.5,1]
	// and lightness [0.25,0.75].
	ModeHSL
)

// Method identifies one sequence family together with its parameters.
// Implementations are immutable value types; the set is closed (sealed
// by the unexported isMethod), giving compile-time certainty that every
// variant is handled in both generation and inversion.
type Method interface {
	// Name returns the stable lowercase tag used in reports and on the wire.
	Name() string

	// FirstIndex returns the method's natural start index: 0 for Sobol's
	// Gray-code construction, 1 for everything else.
	FirstIndex() uint32

	isMethod()
}

// Golden walks the hue circle by the golden ratio: h = frac(seed + n/φ)·360.
type Golden struct{}

// Plastic drives hue and saturation from the plastic constant:
// h = frac(seed + n/φ₂)·360, s = frac(seed + n/φ₂²)·0.5 + 0.5.
type Plastic struct{}

// Halton reflects the digits of n in three coprime bases (van der
// Corput radical inverse per base). A zero Bases array resolves to the
// default primes 2, 3, 5.
type Halton struct {
	Bases [3]uint32
	Mode  ColorMode
}

// RSequence generalizes Plastic to dimension Dim using the metallic
// constant φ_d (the root of x^(d+1)=x+1). Dim 0 resolves to the default
// dimension 2.
type RSequence struct {
	Dim uint32
}

// Kronecker steps the hue by a fixed irrational: h = frac(seed + n·α)·360.
// Alpha 0 resolves to √2.
type Kronecker struct {
	Alpha float64
}

// Sobol XORs 30-bit direction numbers selected by the Gray code of n,
// one independent stream per color dimension.
type Sobol struct {
	Mode ColorMode
}

// Pisot exposes the quasiperiodic map v = frac(seed + round(θ^n)) for a
// Pisot number θ. Theta 0 resolves to the golden ratio.
type Pisot struct {
	Theta float64
}

// ContinuedFraction derives hue from the n-th convergent p/q of a fixed
// expansion: h = frac(seed + p/q)·360.
type ContinuedFraction struct {
	Kind algebra.CFKind
}

// Name implements Method.
func (Golden) Name() string { return "golden" }

// Name implements Method.
func (Plastic) Name() string { return "plastic" }

// Name implements Method.
func (Halton) Name() string { return "halton" }

// Name implements Method.
func (RSequence) Name() string { return "rsequence" }

// Name implements Method.
func (Kronecker) Name() string { return "kronecker" }

// Name implements Method.
func (Sobol) Name() string { return "sobol" }

// Name implements Method.
func (Pisot) Name() string { return "pisot" }

// Name implements Method.
func (ContinuedFraction) Name() string { return "cfrac" }

// FirstIndex implements Method; the additive families start at n=1.
func (Golden) FirstIndex() uint32 { return 1 }

// FirstIndex implements Method.
func (Plastic) FirstIndex() uint32 { return 1 }

// FirstIndex implements Method.
func (Halton) FirstIndex() uint32 { return 1 }

// FirstIndex implements Method.
func (RSequence) FirstIndex() uint32 { return 1 }

// FirstIndex implements Method.
func (Kronecker) FirstIndex() uint32 { return 1 }

// FirstIndex implements Method; the Gray-code accumulator naturally
// emits the zero point first.
func (Sobol) FirstIndex() uint32 { return 0 }

// FirstIndex implements Method.
func (Pisot) FirstIndex() uint32 { return 1 }

// FirstIndex implements Method.
func (ContinuedFraction) FirstIndex() uint32 { return 1 }

func (Golden) isMethod()            {}
func (Plastic) isMethod()           {}
func (Halton) isMethod()            {}
func (RSequence) isMethod()         {}
func (Kronecker) isMethod()         {}
func (Sobol) isMethod()             {}
func (Pisot) isMethod()             {}
func (ContinuedFraction) isMethod() {}

// Options carries the visual parameters applied after the coordinate
// computation. Resolved from Option setters via gatherOptions.
type Options struct {
	// Lightness is the HSL lightness for methods that do not derive it
	// from a coordinate stream.
	Lightness float64

	// Saturation is the HSL saturation for fixed-saturation methods.
	Saturation float64
}

// Option is a functional setter for Options.
type Option func(*Options)

// WithLightness overrides the HSL lightness. Panics outside [0,1]
// (programmer error).
func WithLightness(l float64) Option {
	if math.IsNaN(l) || l < 0 || l > 1 {
		panic("sequence: WithLightness: lightness must be in [0,1]")
	}

	return func(o *Options) { o.Lightness = l }
}

// WithSaturation overrides the HSL saturation for fixed-saturation
// methods. Panics outside [0,1] (programmer error).
func WithSaturation(s float64) Option {
	if math.IsNaN(s) || s < 0 || s > 1 {
		panic("sequence: WithSaturation: saturation must be in [0,1]")
	}

	return func(o *Options) { o.Saturation = s }
}

// DefaultOptions returns the documented visual defaults.
func DefaultOptions() Options {
	return Options{
		Lightness:  DefaultLightness,
		Saturation: DefaultSaturation,
	}
}

// gatherOptions applies user setters on top of defaults,
// last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}
