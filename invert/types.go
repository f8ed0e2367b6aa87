// SPDX-License-Identifier: MIT

package invert

import (
	"errors"
	"math"
)

// Sentinel errors surfaced by the inversion engine. Search exhaustion is
// deliberately absent: a not-found outcome is data (Result.Found=false),
// never an error.
var (
	// ErrBadTolerance indicates a tolerance that is not a positive
	// finite number.
	ErrBadTolerance = errors.New("invert: tolerance must be positive and finite")

	// ErrBadMaxSearch indicates a zero search bound.
	ErrBadMaxSearch = errors.New("invert: max search bound must be positive")

	// ErrBadWorkerCount indicates a non-positive worker count.
	ErrBadWorkerCount = errors.New("invert: worker count must be positive")
)

// Defaults for the bounded scan.
const (
	// DefaultMaxSearch is the index bound scanned when none is given.
	DefaultMaxSearch uint32 = 10000

	// DefaultTolerance is the match threshold in unit-RGB-cube units.
	DefaultTolerance = 0.01

	// DefaultToleranceLab is the match threshold used by the perceptual
	// mode when no explicit tolerance is set: one just-noticeable
	// difference on colorspace.DistanceLab's normalized scale, where L
	// spans [0,1] and whole-gamut distances stay below ~1.5. The classic
	// ΔE ≈ 2.3 JND divided by 100 for the L normalization.
	DefaultToleranceLab = 0.023

	// DefaultWorkers is the serial scan.
	DefaultWorkers = 1
)

// Result is the outcome of one inversion call.
//
// Found distinguishes "index 0 matched" from "nothing matched" — some
// methods legitimately start at index 0, so the index alone can never
// signal absence. Distance carries the matched distance when Found, and
// the smallest distance observed over the whole range otherwise.
type Result struct {
	Found    bool
	Index    uint32
	Distance float64
}

// Options configures the bounded scan. Resolved from Option setters on
// top of the documented defaults.
type Options struct {
	// MaxSearch is the inclusive upper index bound.
	MaxSearch uint32

	// Tolerance is the match threshold; interpreted in unit-cube units,
	// or in Lab units when Perceptual is set.
	Tolerance float64

	// Workers partitions the range across goroutines when > 1.
	Workers int

	// Perceptual switches the metric to CIE Lab distance.
	Perceptual bool

	// toleranceSet records whether the caller overrode the default, so
	// the perceptual mode can substitute its own default threshold.
	toleranceSet bool
}

// Option is a functional setter for Options.
type Option func(*Options)

// WithMaxSearch bounds the scan at max (inclusive). Panics on zero
// (programmer error).
func WithMaxSearch(max uint32) Option {
	if max == 0 {
		panic(ErrBadMaxSearch.Error())
	}

	return func(o *Options) { o.MaxSearch = max }
}

// WithTolerance sets the match threshold. Panics unless positive and
// finite (programmer error).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(ErrBadTolerance.Error())
	}

	return func(o *Options) {
		o.Tolerance = tol
		o.toleranceSet = true
	}
}

// WithWorkers partitions the search range across k goroutines. The
// result is identical to the serial scan: the lowest qualifying index
// wins. Panics on k < 1 (programmer error).
func WithWorkers(k int) Option {
	if k < 1 {
		panic(ErrBadWorkerCount.Error())
	}

	return func(o *Options) { o.Workers = k }
}

// WithPerceptualDistance matches in CIE Lab space instead of the unit
// RGB cube. Unless WithTolerance is also given, the threshold becomes
// DefaultToleranceLab.
func WithPerceptualDistance() Option {
	return func(o *Options) { o.Perceptual = true }
}

// DefaultOptions returns the documented defaults: a serial scan of
// 10000 indices at tolerance 0.01 in the unit cube.
func DefaultOptions() Options {
	return Options{
		MaxSearch: DefaultMaxSearch,
		Tolerance: DefaultTolerance,
		Workers:   DefaultWorkers,
	}
}

// gatherOptions resolves setters against defaults and finalizes the
// perceptual-tolerance derivation in one place.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}
	if o.Perceptual && !o.toleranceSet {
		o.Tolerance = DefaultToleranceLab
	}

	return o
}
