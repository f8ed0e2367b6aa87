// Package invert recovers the sequence index that produced a color: the
// reverse half of the generate/invert bijection.
//
// 🚀 What is invert?
//
//	Given a target color, a method, and the seed, the engine re-runs the
//	forward generator over a bounded index range and returns the first
//	index whose color lands within a distance tolerance of the target.
//	Exhausting the range is a valid outcome (Found=false), not an error.
//
// Why a linear scan?
//
//	The forward map is a nonlinear modular transform; once a coordinate
//	wraps into hue/saturation space there is no guaranteed monotonicity
//	to exploit, so a bounded scan with a distance tolerance is the
//	correct baseline. Callers needing speed can partition the range
//	across workers (WithWorkers) without changing the result: the lowest
//	qualifying index always wins.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/chromaseq/invert"
//
//	res, err := invert.InvertHex("#851BE4", sequence.Plastic{}, 42)
//	if err != nil {
//	  // handle ErrMalformedColor / ErrUnknownMethod
//	}
//	if res.Found {
//	  fmt.Println("index:", res.Index) // 1
//	}
//
// Tolerance:
//
//	The default (0.01 in the unit RGB cube) comfortably absorbs the
//	8-bit quantization error of the hex wire format while keeping
//	distinct indices separable over a 10⁴ search range. More than one
//	match below tolerance in the range means the tolerance is too loose
//	for that method and bound.
//
// All operations are pure and reentrant; the parallel mode shares
// nothing but a result slot guarded internally.
package invert
