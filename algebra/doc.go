// Package algebra provides the number-theoretic helpers behind two of
// the chromaseq generators: Newton's-method computation of the metallic
// constants (the real roots >1 of x^(d+1) = x + 1) and classic
// continued-fraction convergents.
//
// The golden ratio is the d=1 metallic constant, the plastic constant
// is d=2, and higher dimensions extend the same family; the R-sequence
// generator derives its per-dimension irrationals here. The
// continued-fraction generator walks the convergents p/q of a fixed
// expansion (golden, √2, or e) produced by Coefficients and Convergent.
//
// Determinism:
//   - MetallicRoot always starts from the same initial guess (1.5) and
//     applies the same stopping rule, so independent runs and
//     independent ports agree to the last bit.
//   - Convergent is an exact integer recurrence; no floating point is
//     involved until the caller divides p by q.
//
// All functions are pure; errors are sentinels declared in types.go.
package algebra
