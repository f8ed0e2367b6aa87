// Package sequence maps positions of low-discrepancy sequences to
// colors: eight pure generator families taking (index, seed, visual
// parameters) to an RGB triple.
//
// 🚀 What is sequence?
//
//	Each family computes one or more scalar coordinates in [0,1) via
//	frac(seed + index/constant) — a modular walk driven by an irrational
//	constant — and maps them into (hue, saturation) or directly into
//	(r, g, b). The resulting colors spread evenly, never repeat for
//	distinct indices within a practical range, and are exactly
//	reproducible from (method, seed, index).
//
// ✨ Families:
//   - Golden            — hue walk by the golden ratio φ
//   - Plastic           — hue + saturation from the plastic constant φ₂
//   - Halton            — digit reflection in three coprime bases
//   - RSequence         — Plastic generalized to dimension d via φ_d
//   - Kronecker         — hue walk by an arbitrary irrational α
//   - Sobol             — Gray-code/direction-number construction
//   - Pisot             — quasiperiodic frac(seed + round(θ^n))
//   - ContinuedFraction — hue from convergents p/q of a fixed expansion
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/chromaseq/sequence"
//
//	// one color
//	c, err := sequence.Color(sequence.Plastic{}, 1, 42)
//
//	// a run of colors from the method's natural start index
//	hexes, err := sequence.GenerateHex(sequence.Golden{}, 42, 16)
//
// Determinism:
//
//	Identical (method, seed, index) inputs always yield the identical
//	color. There is no package state; the seed is threaded explicitly
//	through every call, so all functions are safe for concurrent use.
//
// Start index:
//
//	Methods disagree on their natural first position: Sobol starts at 0
//	(its Gray-code accumulator emits the zero point first), everything
//	else at 1. Method.FirstIndex makes the convention explicit; Generate
//	and the inversion engine honor it automatically.
package sequence
