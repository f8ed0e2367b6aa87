package discrepancy_test

import (
	"testing"

	"github.com/katalvlaran/chromaseq/discrepancy"
	"github.com/katalvlaran/chromaseq/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDispersion_UniformLatticeIsZero checks the perfectly even case:
// equidistant points leave identical gaps, so the deviation vanishes.
func TestDispersion_UniformLatticeIsZero(t *testing.T) {
	d, err := discrepancy.Dispersion([]float64{0.25, 0.5, 0.75})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, d, 1e-15, "an even lattice must score zero")
}

// TestDispersion_KnownValue pins a hand-computed score: the single point
// 0.2 splits [0,1] into gaps 0.2 and 0.8, both 0.3 away from the mean.
func TestDispersion_KnownValue(t *testing.T) {
	d, err := discrepancy.Dispersion([]float64{0.2})
	require.NoError(t, err)
	assert.InDelta(t, 0.3, d, 1e-15)
}

// TestDispersion_ClusteringScoresWorse compares an even spread against
// the same number of points piled into one corner.
func TestDispersion_ClusteringScoresWorse(t *testing.T) {
	even, err := discrepancy.Dispersion([]float64{0.2, 0.4, 0.6, 0.8})
	require.NoError(t, err)
	clustered, err := discrepancy.Dispersion([]float64{0.01, 0.02, 0.03, 0.04})
	require.NoError(t, err)
	assert.Greater(t, clustered, even, "clustering must raise the dispersion score")
}

// TestDispersion_InputUntouched verifies the sort happens on a copy.
func TestDispersion_InputUntouched(t *testing.T) {
	points := []float64{0.9, 0.1, 0.5}
	_, err := discrepancy.Dispersion(points)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.9, 0.1, 0.5}, points, "the caller's slice must stay unsorted")
}

// TestDispersion_Errors covers the empty and out-of-range inputs.
func TestDispersion_Errors(t *testing.T) {
	_, err := discrepancy.Dispersion(nil)
	assert.ErrorIs(t, err, discrepancy.ErrNoPoints, "empty input must be rejected")

	_, err = discrepancy.Dispersion([]float64{0.5, 1.0})
	assert.ErrorIs(t, err, discrepancy.ErrPointOutOfRange, "1.0 lies outside the half-open interval")

	_, err = discrepancy.Dispersion([]float64{-0.1})
	assert.ErrorIs(t, err, discrepancy.ErrPointOutOfRange, "negative points must be rejected")
}

// TestCompare_RanksLowDiscrepancyAboveDegenerate checks every genuine
// low-discrepancy family beats the quasiperiodic map, whose integer-seed
// stream collapses to a single point.
func TestCompare_RanksLowDiscrepancyAboveDegenerate(t *testing.T) {
	report, err := discrepancy.Compare(128, 42,
		sequence.Golden{},
		sequence.Plastic{},
		sequence.Halton{},
		sequence.Kronecker{},
		sequence.Sobol{},
		sequence.Pisot{},
	)
	require.NoError(t, err)
	require.Len(t, report.Ranking, 6)
	require.Len(t, report.Dispersion, 6)

	pisot := report.Dispersion["pisot"]
	for _, name := range []string{"golden", "plastic", "halton", "kronecker", "sobol"} {
		assert.Less(t, report.Dispersion[name], pisot, "%s must cover the interval better than pisot", name)
	}
	assert.Equal(t, "pisot", report.Ranking[len(report.Ranking)-1], "the collapsed stream must rank last")
}

// TestCompare_RankingMatchesScores checks the ranking is the score map
// sorted ascending.
func TestCompare_RankingMatchesScores(t *testing.T) {
	report, err := discrepancy.Compare(64, 7,
		sequence.Golden{}, sequence.Plastic{}, sequence.ContinuedFraction{})
	require.NoError(t, err)
	require.Len(t, report.Ranking, 3)
	for i := 1; i < len(report.Ranking); i++ {
		prev := report.Dispersion[report.Ranking[i-1]]
		cur := report.Dispersion[report.Ranking[i]]
		assert.LessOrEqual(t, prev, cur, "ranking must be ascending by dispersion")
	}
}

// TestCompare_Deterministic re-runs a comparison and expects identical
// reports: no hidden state, no map-order leakage into the ranking.
func TestCompare_Deterministic(t *testing.T) {
	methods := []sequence.Method{sequence.Halton{}, sequence.Sobol{}, sequence.Golden{}}
	a, err := discrepancy.Compare(100, 42, methods...)
	require.NoError(t, err)
	b, err := discrepancy.Compare(100, 42, methods...)
	require.NoError(t, err)
	assert.Equal(t, a, b, "identical inputs must yield the identical report")
}

// TestCompare_DuplicateMethodKeepsOne verifies a repeated method
// collapses to a single entry.
func TestCompare_DuplicateMethodKeepsOne(t *testing.T) {
	report, err := discrepancy.Compare(32, 0, sequence.Golden{}, sequence.Golden{})
	require.NoError(t, err)
	assert.Len(t, report.Ranking, 1)
	assert.Len(t, report.Dispersion, 1)
}

// TestCompare_Errors covers the argument validation and generator
// error propagation.
func TestCompare_Errors(t *testing.T) {
	_, err := discrepancy.Compare(0, 42, sequence.Golden{})
	assert.ErrorIs(t, err, discrepancy.ErrBadSampleCount, "zero samples must be rejected")

	_, err = discrepancy.Compare(-5, 42, sequence.Golden{})
	assert.ErrorIs(t, err, discrepancy.ErrBadSampleCount, "negative samples must be rejected")

	_, err = discrepancy.Compare(10, 42)
	assert.ErrorIs(t, err, discrepancy.ErrNoMethods, "an empty method set must be rejected")

	_, err = discrepancy.Compare(10, 42, nil)
	assert.ErrorIs(t, err, sequence.ErrUnknownMethod, "a nil method must be rejected")

	_, err = discrepancy.Compare(10, 42, sequence.Kronecker{Alpha: -1})
	assert.ErrorIs(t, err, sequence.ErrBadParameter, "generator validation must propagate")
}
