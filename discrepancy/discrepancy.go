// SPDX-License-Identifier: MIT

package discrepancy

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/chromaseq/sequence"
)

// Sentinel errors surfaced by the analyzer.
var (
	// ErrNoPoints indicates an empty point set.
	ErrNoPoints = errors.New("discrepancy: point set must not be empty")

	// ErrPointOutOfRange indicates a point outside [0,1).
	ErrPointOutOfRange = errors.New("discrepancy: points must lie in [0,1)")

	// ErrBadSampleCount indicates a non-positive sample count.
	ErrBadSampleCount = errors.New("discrepancy: sample count must be positive")

	// ErrNoMethods indicates a comparison over an empty method set.
	ErrNoMethods = errors.New("discrepancy: at least one method is required")
)

// Report is the outcome of one Compare call: the dispersion score per
// method name, and the names sorted from most to least uniform.
type Report struct {
	// Dispersion maps each method name to its gap-dispersion score.
	Dispersion map[string]float64

	// Ranking lists the method names in ascending dispersion order;
	// equal scores break toward the lexicographically smaller name.
	Ranking []string
}

// Dispersion measures the uniformity of points over [0,1): sort a copy,
// close the interval with the virtual endpoints 0 and 1, and return the
// population standard deviation of the consecutive gaps. A perfectly
// even lattice scores 0; lower is more uniform.
//
// Errors: ErrNoPoints on an empty slice, ErrPointOutOfRange for any
// point outside [0,1). The input slice is never mutated.
//
// Complexity: O(len·log len) for the sort.
func Dispersion(points []float64) (float64, error) {
	if len(points) == 0 {
		return 0, ErrNoPoints
	}
	for _, p := range points {
		if math.IsNaN(p) || p < 0 || p >= 1 {
			return 0, ErrPointOutOfRange
		}
	}

	sorted := make([]float64, len(points))
	copy(sorted, points)
	sort.Float64s(sorted)

	// n points split [0,1] into n+1 gaps; their mean is 1/(n+1) exactly.
	gaps := len(sorted) + 1
	mean := 1.0 / float64(gaps)

	variance := 0.0
	prev := 0.0
	for _, p := range sorted {
		d := (p - prev) - mean
		variance += d * d
		prev = p
	}
	d := (1 - prev) - mean
	variance += d * d

	return math.Sqrt(variance / float64(gaps)), nil
}

// Compare generates n samples of each method's primary coordinate
// stream (starting at its natural start index) and ranks the methods by
// Dispersion, most uniform first.
//
// Errors: ErrBadSampleCount for n ≤ 0, ErrNoMethods for an empty method
// set, plus any generator error (sequence.ErrUnknownMethod,
// sequence.ErrBadParameter). Passing the same method name twice keeps
// the last score.
//
// Complexity: O(methods · n·log n).
func Compare(n int, seed int64, methods ...sequence.Method) (Report, error) {
	if n <= 0 {
		return Report{}, ErrBadSampleCount
	}
	if len(methods) == 0 {
		return Report{}, ErrNoMethods
	}

	scores := make(map[string]float64, len(methods))
	for _, m := range methods {
		if m == nil {
			return Report{}, sequence.ErrUnknownMethod
		}

		points := make([]float64, 0, n)
		first := m.FirstIndex()
		for i := 0; i < n; i++ {
			x, err := sequence.Coordinate(m, first+uint32(i), seed)
			if err != nil {
				return Report{}, err
			}
			points = append(points, x)
		}

		score, err := Dispersion(points)
		if err != nil {
			return Report{}, err
		}
		scores[m.Name()] = score
	}

	ranking := make([]string, 0, len(scores))
	for name := range scores {
		ranking = append(ranking, name)
	}
	sort.Slice(ranking, func(i, j int) bool {
		a, b := ranking[i], ranking[j]
		if scores[a] != scores[b] {
			return scores[a] < scores[b]
		}

		return a < b
	})

	return Report{Dispersion: scores, Ranking: ranking}, nil
}
