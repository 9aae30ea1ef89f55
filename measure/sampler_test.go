// Package measure_test validates Born-rule marginalization, sampling
// determinism under a fixed seed, and input validation.

package measure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsim/engine"
	"github.com/katalvlaran/qsim/gate"
	"github.com/katalvlaran/qsim/measure"
)

// bell returns the entangled state (|00⟩+|11⟩)/√2.
func bell(t *testing.T) *engine.State {
	t.Helper()
	s, err := engine.NewState(2)
	require.NoError(t, err)
	require.NoError(t, s.Apply(gate.H(), 0))
	require.NoError(t, s.Apply(gate.CNOT(), 0, 1))

	return s
}

func TestDistribution_FullRegister(t *testing.T) {
	s := bell(t)

	dist, err := measure.Distribution(s, []int{0, 1})
	require.NoError(t, err)
	require.Len(t, dist, 4)

	assert.InDelta(t, 0.5, dist[0], 1e-12, "|00⟩")
	assert.InDelta(t, 0.0, dist[1], 1e-12, "|01⟩")
	assert.InDelta(t, 0.0, dist[2], 1e-12, "|10⟩")
	assert.InDelta(t, 0.5, dist[3], 1e-12, "|11⟩")
}

func TestDistribution_MarginalOverOneQubit(t *testing.T) {
	s := bell(t)

	// Tracing out qubit 1 from the Bell pair leaves 50/50 on qubit 0.
	dist, err := measure.Distribution(s, []int{0})
	require.NoError(t, err)
	require.Len(t, dist, 2)
	assert.InDelta(t, 0.5, dist[0], 1e-12)
	assert.InDelta(t, 0.5, dist[1], 1e-12)
}

func TestDistribution_OrderInsensitive(t *testing.T) {
	s := bell(t)

	// The measured set is normalized ascending, so both spellings are
	// the same marginal.
	a, err := measure.Distribution(s, []int{0, 1})
	require.NoError(t, err)
	b, err := measure.Distribution(s, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDistribution_SumsToOne(t *testing.T) {
	s, err := engine.NewState(3)
	require.NoError(t, err)
	require.NoError(t, s.Apply(gate.H(), 0))
	require.NoError(t, s.Apply(gate.T(), 0))
	require.NoError(t, s.Apply(gate.CNOT(), 0, 2))

	dist, err := measure.Distribution(s, []int{0, 1, 2})
	require.NoError(t, err)

	total := 0.0
	for _, p := range dist {
		total += p
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestDistribution_Validation(t *testing.T) {
	s, err := engine.NewState(2)
	require.NoError(t, err)

	_, err = measure.Distribution(nil, []int{0})
	assert.ErrorIs(t, err, measure.ErrNilState)
	_, err = measure.Distribution(s, nil)
	assert.ErrorIs(t, err, measure.ErrNoMeasuredQubits)
	_, err = measure.Distribution(s, []int{2})
	assert.ErrorIs(t, err, measure.ErrQubitOutOfRange)
	_, err = measure.Distribution(s, []int{0, 0})
	assert.ErrorIs(t, err, measure.ErrDuplicateQubit)
}

// ------------------------------------------------------------------------
// Sampling.
// ------------------------------------------------------------------------

func TestSample_DeterministicUnderSeed(t *testing.T) {
	dist := []float64{0.25, 0.25, 0.25, 0.25}

	a, err := measure.Sample(dist, 500, measure.WithSeed(42))
	require.NoError(t, err)
	b, err := measure.Sample(dist, 500, measure.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce the exact draw sequence")

	c, err := measure.Sample(dist, 500, measure.WithSeed(43))
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seed must diverge")
}

func TestSample_CertainOutcome(t *testing.T) {
	outcomes, err := measure.Sample([]float64{0, 1}, 200, measure.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, outcomes, 200)
	for _, o := range outcomes {
		assert.Equal(t, 1, o)
	}
}

func TestSample_FrequenciesTrackProbabilities(t *testing.T) {
	const shots = 20000
	dist := []float64{0.5, 0.5}

	outcomes, err := measure.Sample(dist, shots, measure.WithSeed(1))
	require.NoError(t, err)

	ones := 0
	for _, o := range outcomes {
		ones += o
	}
	p := float64(ones) / shots
	// 5σ slack with σ = √(0.25/shots).
	slack := 5 * math.Sqrt(0.25/shots)
	assert.InDelta(t, 0.5, p, slack)
}

func TestSample_Validation(t *testing.T) {
	_, err := measure.Sample([]float64{1}, 0)
	assert.ErrorIs(t, err, measure.ErrNonPositiveShots)
	_, err = measure.Sample(nil, 10)
	assert.ErrorIs(t, err, measure.ErrBadDistribution)
	_, err = measure.Sample([]float64{-0.1, 1.1}, 10)
	assert.ErrorIs(t, err, measure.ErrBadDistribution)
	_, err = measure.Sample([]float64{0.3, 0.3}, 10)
	assert.ErrorIs(t, err, measure.ErrBadDistribution, "mass 0.6 is not a distribution")
}

func TestSample_MassBoundIsEngineTolerance(t *testing.T) {
	// The sampler accepts exactly the mass deviation the engine's norm
	// invariant permits. Just inside the bound passes, just outside is
	// rejected.
	inside := []float64{0.5, 0.5 + engine.Tolerance/2}
	_, err := measure.Sample(inside, 10, measure.WithSeed(1))
	assert.NoError(t, err)

	outside := []float64{0.5, 0.5 + 10*engine.Tolerance}
	_, err = measure.Sample(outside, 10, measure.WithSeed(1))
	assert.ErrorIs(t, err, measure.ErrBadDistribution)
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { measure.WithRand(nil) })
}

func TestSample_DoesNotConsumeState(t *testing.T) {
	s := bell(t)
	dist, err := measure.Distribution(s, []int{0, 1})
	require.NoError(t, err)

	_, err = measure.Sample(dist, 100, measure.WithSeed(3))
	require.NoError(t, err)

	// Each shot models an independent execution: the state and its
	// distribution are unchanged after sampling.
	again, err := measure.Distribution(s, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, dist, again)
	assert.InDelta(t, 1.0, s.Norm(), engine.Tolerance)
}
