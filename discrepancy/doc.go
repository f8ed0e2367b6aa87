// Package discrepancy ranks the sequence families by how uniformly they
// cover the unit interval.
//
// 🚀 What is discrepancy?
//
//	A low-discrepancy sequence fills [0,1) more evenly than random
//	sampling. This package measures evenness with a gap-dispersion
//	statistic: sort the points, close the interval with 0 and 1, take
//	the consecutive gaps and return their standard deviation. A
//	perfectly uniform lattice scores 0; clustering drives the score up.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/chromaseq/discrepancy"
//
//	report, err := discrepancy.Compare(256, 42,
//	  sequence.Golden{}, sequence.Plastic{}, sequence.Halton{})
//	if err != nil {
//	  // handle ErrBadSampleCount / ErrNoMethods / generator errors
//	}
//	fmt.Println(report.Ranking) // most uniform first
//
// The analyzer is an offline batch consumer of the generators' primary
// coordinate streams. It never influences generation or inversion; a
// ranking is descriptive, not normative.
//
// All operations are pure and reentrant.
package discrepancy
