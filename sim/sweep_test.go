// Package sim_test: sweep (RunAll) behavior — order preservation,
// reproducibility of seeded sweeps, run identity, and option policy.

package sim_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/sim"
)

// rotationSweep builds `n` one-qubit circuits with increasing rotation
// U(kπ/(n−1), 0, 0), k = 0..n−1 — the classic ramp from certain "0" to
// certain "1".
func rotationSweep(t *testing.T, n int) []*circuit.Circuit {
	t.Helper()
	cs := make([]*circuit.Circuit, n)
	for k := 0; k < n; k++ {
		c, err := circuit.New(1)
		require.NoError(t, err)
		require.NoError(t, c.U(0, float64(k)*math.Pi/float64(n-1), 0, 0))
		cs[k] = c
	}

	return cs
}

func TestRunAll_OrderAndConservation(t *testing.T) {
	cs := rotationSweep(t, 8)

	reports, err := sim.RunAll(cs, shots, sim.WithSeed(123), sim.WithWorkers(4))
	require.NoError(t, err)
	require.Len(t, reports, 8)

	// Report i belongs to circuit i: the observed P("1") must ramp
	// monotonically-ish from 0 to 1 (exactly 0 and 1 at the ends).
	assert.Equal(t, shots, reports[0].Counts["0"], "θ=0 ⇒ certain \"0\"")
	assert.Equal(t, shots, reports[7].Counts["1"], "θ=π ⇒ certain \"1\"")
	for i, rep := range reports {
		assert.Equal(t, shots, rep.Counts.Total(), "report %d", i)
	}
	pMid := reports[4].Counts.Probability("1", shots)
	assert.Greater(t, pMid, reports[1].Counts.Probability("1", shots))
}

func TestRunAll_SeededSweepIsReproducible(t *testing.T) {
	cs := rotationSweep(t, 5)

	a, err := sim.RunAll(cs, shots, sim.WithSeed(7))
	require.NoError(t, err)
	b, err := sim.RunAll(cs, shots, sim.WithSeed(7))
	require.NoError(t, err)

	for i := range a {
		assert.Equal(t, a[i].Counts, b[i].Counts, "run %d", i)
	}
}

func TestRunAll_DerivesSeedPlusIndex(t *testing.T) {
	// Run i of a sweep seeded with s must equal a standalone Run seeded
	// with s+i — that is the published reproducibility contract.
	c0, err := circuit.New(1)
	require.NoError(t, err)
	require.NoError(t, c0.H(0))
	c1, err := circuit.New(1)
	require.NoError(t, err)
	require.NoError(t, c1.H(0))

	reports, err := sim.RunAll([]*circuit.Circuit{c0, c1}, shots, sim.WithSeed(400))
	require.NoError(t, err)

	solo0, err := sim.Run(c0, shots, sim.WithSeed(400))
	require.NoError(t, err)
	solo1, err := sim.Run(c1, shots, sim.WithSeed(401))
	require.NoError(t, err)
	assert.Equal(t, solo0, reports[0].Counts)
	assert.Equal(t, solo1, reports[1].Counts)
}

func TestRunAll_RunIDsAreUnique(t *testing.T) {
	cs := rotationSweep(t, 4)

	reports, err := sim.RunAll(cs, 16, sim.WithSeed(1))
	require.NoError(t, err)

	seen := make(map[uuid.UUID]bool, len(reports))
	for _, rep := range reports {
		assert.False(t, seen[rep.RunID], "duplicate RunID %s", rep.RunID)
		seen[rep.RunID] = true
		assert.NotEqual(t, uuid.Nil, rep.RunID)
	}
}

func TestRunAll_Validation(t *testing.T) {
	cs := rotationSweep(t, 2)

	_, err := sim.RunAll(cs, 0)
	assert.ErrorIs(t, err, sim.ErrNonPositiveShots)

	_, err = sim.RunAll([]*circuit.Circuit{cs[0], nil}, 16)
	assert.ErrorIs(t, err, sim.ErrNilCircuit)

	_, err = sim.RunAll(cs, 16, sim.WithRand(rand.New(rand.NewSource(1))))
	assert.ErrorIs(t, err, sim.ErrRandInSweep)

	reports, err := sim.RunAll(nil, 16)
	require.NoError(t, err)
	assert.Nil(t, reports)
}

func TestWithWorkers_NonPositivePanics(t *testing.T) {
	assert.Panics(t, func() { sim.WithWorkers(0) })
}
