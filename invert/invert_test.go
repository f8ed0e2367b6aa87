package invert_test

import (
	"testing"

	"github.com/katalvlaran/chromaseq/colorspace"
	"github.com/katalvlaran/chromaseq/invert"
	"github.com/katalvlaran/chromaseq/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bijective methods covered by the round-trip contract.
func bijectiveMethods() []sequence.Method {
	return []sequence.Method{
		sequence.Golden{},
		sequence.Plastic{},
		sequence.Halton{},
		sequence.Kronecker{},
	}
}

// roundTripIndices returns the index set exercised per method. The
// two-channel and three-channel families are collision-free across the
// whole window; the single-channel hue walks (Golden, Kronecker) pick
// up sub-tolerance hue neighbors at index gaps of 233 (Fibonacci) and
// 169 (Pell) respectively, so their exact-recovery window is narrower;
// beyond it the tolerance, not the scan, is the limiting factor.
func roundTripIndices(m sequence.Method) []uint32 {
	switch m.(type) {
	case sequence.Golden:
		return []uint32{1, 2, 3, 17, 100, 200}
	case sequence.Kronecker:
		return []uint32{1, 2, 3, 17, 100, 150}
	default:
		return []uint32{1, 2, 3, 17, 100, 419, 1000}
	}
}

// TestInvert_RoundTrip verifies the bijection contract: for each
// bijective method, generating at n and inverting recovers exactly n.
func TestInvert_RoundTrip(t *testing.T) {
	const seed = 42
	for _, m := range bijectiveMethods() {
		for _, n := range roundTripIndices(m) {
			c, err := sequence.Color(m, n, seed)
			require.NoError(t, err, "%s: generate n=%d", m.Name(), n)

			res, err := invert.Invert(c, m, seed)
			require.NoError(t, err, "%s: invert n=%d", m.Name(), n)
			require.True(t, res.Found, "%s: n=%d must be found within the default bound", m.Name(), n)
			assert.Equal(t, n, res.Index, "%s: inversion must recover the exact index", m.Name())
			assert.Less(t, res.Distance, invert.DefaultTolerance, "%s: matched distance must be below tolerance", m.Name())
		}
	}
}

// TestInvert_RoundTripDense sweeps every plastic index in [1,300] to
// catch off-by-one drift anywhere in the scan window.
func TestInvert_RoundTripDense(t *testing.T) {
	const seed = 42
	for n := uint32(1); n <= 300; n++ {
		c, err := sequence.Color(sequence.Plastic{}, n, seed)
		require.NoError(t, err)

		res, err := invert.Invert(c, sequence.Plastic{}, seed, invert.WithMaxSearch(1000))
		require.NoError(t, err)
		require.True(t, res.Found, "n=%d must be found", n)
		require.Equal(t, n, res.Index, "n=%d must round-trip exactly", n)
	}
}

// TestInvertHex_LiteralVectors pins the reference inversions from the
// engine's cross-implementation vectors.
func TestInvertHex_LiteralVectors(t *testing.T) {
	res, err := invert.InvertHex("#851BE4", sequence.Plastic{}, 42, invert.WithMaxSearch(10000))
	require.NoError(t, err)
	require.True(t, res.Found, "#851BE4 must invert")
	assert.Equal(t, uint32(1), res.Index, "#851BE4 is plastic index 1 under seed 42")

	res, err = invert.InvertHex("#D4832B", sequence.Plastic{}, 42, invert.WithMaxSearch(10000))
	require.NoError(t, err)
	require.True(t, res.Found, "#D4832B must invert")
	assert.Equal(t, uint32(69), res.Index, "#D4832B is plastic index 69 under seed 42")
}

// TestInvert_QuantizedTarget inverts through the lossy hex boundary:
// the wire color is close to, but not identical with, the continuous
// color, and the default tolerance must absorb the gap.
func TestInvert_QuantizedTarget(t *testing.T) {
	const seed = 42
	c, err := sequence.Color(sequence.Golden{}, 123, seed)
	require.NoError(t, err)

	res, err := invert.InvertHex(c.Hex(), sequence.Golden{}, seed)
	require.NoError(t, err)
	require.True(t, res.Found, "quantized color must still invert")
	assert.Equal(t, uint32(123), res.Index, "quantization must not shift the recovered index")
}

// TestInvert_SearchExhausted verifies exhaustion is a not-found outcome
// carrying the closest distance, never an error.
func TestInvert_SearchExhausted(t *testing.T) {
	const seed = 42
	c, err := sequence.Color(sequence.Plastic{}, 500, seed)
	require.NoError(t, err)

	res, err := invert.Invert(c, sequence.Plastic{}, seed, invert.WithMaxSearch(100))
	require.NoError(t, err, "exhaustion must not error")
	assert.False(t, res.Found, "index 500 cannot be found within bound 100")
	assert.Zero(t, res.Index, "not-found must leave the index zero")
	assert.Greater(t, res.Distance, 0.0, "not-found must report the closest distance seen")
}

// TestInvert_ForeignColorNotFound inverts a color the sequence can
// never produce. Golden colors keep lightness at 0.5, so pure black
// stays at distance ≥ 0.26 from every candidate and the scan must
// exhaust cleanly.
func TestInvert_ForeignColorNotFound(t *testing.T) {
	res, err := invert.InvertHex("#000000", sequence.Golden{}, 42, invert.WithMaxSearch(2000))
	require.NoError(t, err, "a foreign color must not error")
	assert.False(t, res.Found, "black is outside the golden palette")
	assert.Greater(t, res.Distance, 0.2, "closest golden color must stay far from black")
}

// TestInvert_MalformedHex rejects bad wire input before any scanning.
func TestInvert_MalformedHex(t *testing.T) {
	_, err := invert.InvertHex("851BE4", sequence.Plastic{}, 42)
	assert.ErrorIs(t, err, colorspace.ErrMalformedColor, "missing '#' must be rejected")

	_, err = invert.InvertHex("#851BG4", sequence.Plastic{}, 42)
	assert.ErrorIs(t, err, colorspace.ErrMalformedColor, "non-hex digit must be rejected")
}

// TestInvert_NilMethod rejects a nil method.
func TestInvert_NilMethod(t *testing.T) {
	_, err := invert.Invert(colorspace.RGB{}, nil, 0)
	assert.ErrorIs(t, err, sequence.ErrUnknownMethod, "nil method must be rejected")
}

// TestInvert_BadParameterPropagates surfaces forward-map validation.
func TestInvert_BadParameterPropagates(t *testing.T) {
	_, err := invert.Invert(colorspace.RGB{}, sequence.Kronecker{Alpha: -2}, 0)
	assert.ErrorIs(t, err, sequence.ErrBadParameter, "invalid alpha must propagate")
}

// TestInvert_ParallelMatchesSerial checks worker partitioning changes
// nothing: found/not-found, index and distance all agree.
func TestInvert_ParallelMatchesSerial(t *testing.T) {
	const seed = 42
	for _, n := range []uint32{1, 250, 997} {
		c, err := sequence.Color(sequence.Plastic{}, n, seed)
		require.NoError(t, err)

		serial, err := invert.Invert(c, sequence.Plastic{}, seed)
		require.NoError(t, err)

		for _, workers := range []int{2, 4, 8} {
			parallel, err := invert.Invert(c, sequence.Plastic{}, seed, invert.WithWorkers(workers))
			require.NoError(t, err)
			assert.Equal(t, serial.Found, parallel.Found, "n=%d workers=%d: found flag", n, workers)
			assert.Equal(t, serial.Index, parallel.Index, "n=%d workers=%d: index", n, workers)
			assert.Equal(t, serial.Distance, parallel.Distance, "n=%d workers=%d: distance", n, workers)
		}
	}
}

// TestInvert_ParallelNotFound checks the parallel scan merges the
// minimum distance across chunks on exhaustion.
func TestInvert_ParallelNotFound(t *testing.T) {
	const seed = 42
	c, err := sequence.Color(sequence.Plastic{}, 5000, seed)
	require.NoError(t, err)

	serial, err := invert.Invert(c, sequence.Plastic{}, seed, invert.WithMaxSearch(1000))
	require.NoError(t, err)
	require.False(t, serial.Found)

	parallel, err := invert.Invert(c, sequence.Plastic{}, seed,
		invert.WithMaxSearch(1000), invert.WithWorkers(4))
	require.NoError(t, err)
	assert.False(t, parallel.Found, "parallel exhaustion must agree with serial")
	assert.Equal(t, serial.Distance, parallel.Distance, "minimum distance must merge across chunks")
}

// TestInvert_PerceptualMode inverts under Lab distance with its JND
// default threshold.
func TestInvert_PerceptualMode(t *testing.T) {
	const seed = 42
	c, err := sequence.Color(sequence.Golden{}, 55, seed)
	require.NoError(t, err)

	res, err := invert.InvertHex(c.Hex(), sequence.Golden{}, seed, invert.WithPerceptualDistance())
	require.NoError(t, err)
	require.True(t, res.Found, "perceptual mode must find the quantized color")
	assert.Equal(t, uint32(55), res.Index, "perceptual mode must recover the exact index")
	assert.Less(t, res.Distance, invert.DefaultToleranceLab, "matched Lab distance must sit below the JND default")
}

// TestInvert_PerceptualToleranceIsSelective verifies the Lab default is
// tight on colorspace.DistanceLab's normalized scale: earlier indices
// sit far beyond one JND from the target, so the scan cannot stop at
// the first candidate.
func TestInvert_PerceptualToleranceIsSelective(t *testing.T) {
	const seed = 42
	target, err := sequence.Color(sequence.Golden{}, 55, seed)
	require.NoError(t, err)

	for n := uint32(1); n <= 8; n++ {
		c, err := sequence.Color(sequence.Golden{}, n, seed)
		require.NoError(t, err)
		assert.Greater(t, colorspace.DistanceLab(c, target), invert.DefaultToleranceLab,
			"n=%d: an unrelated hue must not fall inside one JND", n)
	}
}

// TestInvert_SobolStartsAtZero verifies the engine honors Sobol's n=0
// start: the zero point is findable and reported with Found=true.
func TestInvert_SobolStartsAtZero(t *testing.T) {
	const seed = 7
	c, err := sequence.Color(sequence.Sobol{}, 0, seed)
	require.NoError(t, err)

	res, err := invert.Invert(c, sequence.Sobol{}, seed, invert.WithMaxSearch(50))
	require.NoError(t, err)
	require.True(t, res.Found, "the Sobol zero point must be findable")
	assert.Zero(t, res.Index, "index 0 with Found=true is a legitimate outcome")
}

// TestOptions_PanicOnNonsense checks option constructors reject
// nonsensical values loudly.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { invert.WithMaxSearch(0) }, "zero bound must panic")
	assert.Panics(t, func() { invert.WithTolerance(0) }, "zero tolerance must panic")
	assert.Panics(t, func() { invert.WithTolerance(-0.5) }, "negative tolerance must panic")
	assert.Panics(t, func() { invert.WithWorkers(0) }, "zero workers must panic")
}
