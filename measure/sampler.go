// Package measure: Born-rule marginalization and finite-shot sampling.

package measure

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/katalvlaran/qsim/engine"
)

// Distribution computes the Born-rule marginal over the measured
// qubits: outcome probability = Σ|amplitude|² over all basis states
// consistent with the outcome bitstring. Pure and deterministic; the
// state is only read.
//
// The measured set is sorted ascending internally; the j-th measured
// qubit in that order occupies bit j of the outcome index. The result
// has length 2^M and sums to the state norm (1 for a valid state).
//
// Complexity: O(2^N · M) time, O(2^M) space.
func Distribution(st *engine.State, measured []int) ([]float64, error) {
	if st == nil {
		return nil, ErrNilState
	}
	if len(measured) == 0 {
		return nil, ErrNoMeasuredQubits
	}

	sorted := make([]int, len(measured))
	copy(sorted, measured)
	sort.Ints(sorted)
	for j, q := range sorted {
		if q < 0 || q >= st.Qubits() {
			return nil, fmt.Errorf("Distribution: qubit %d of %d: %w", q, st.Qubits(), ErrQubitOutOfRange)
		}
		if j > 0 && sorted[j-1] == q {
			return nil, fmt.Errorf("Distribution: qubit %d: %w", q, ErrDuplicateQubit)
		}
	}

	dist := make([]float64, 1<<len(sorted))
	for i := 0; i < st.Dim(); i++ {
		// Project the basis index onto the measured bits.
		out := 0
		for j, q := range sorted {
			if i&(1<<q) != 0 {
				out |= 1 << j
			}
		}
		dist[out] += st.Probability(i)
	}

	return dist, nil
}

// Sample draws `shots` independent outcomes from dist. Each draw is
// i.i.d.: an inverse-CDF lookup (binary search over the cumulative
// table) against the injected RNG. Without WithSeed/WithRand a
// time-seeded source is used, so only seeded runs are reproducible.
//
// The distribution is validated, not repaired: negative mass or a
// total off by more than engine.Tolerance is ErrBadDistribution, so
// the sampler accepts exactly what the norm invariant guarantees.
//
// Complexity: O(len(dist)) setup, O(shots · log len(dist)) draws.
func Sample(dist []float64, shots int, opts ...Option) ([]int, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("Sample(%d): %w", shots, ErrNonPositiveShots)
	}
	if len(dist) == 0 {
		return nil, fmt.Errorf("Sample: empty distribution: %w", ErrBadDistribution)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Cumulative table; validate while building.
	cum := make([]float64, len(dist))
	total := 0.0
	for i, p := range dist {
		if p < 0 || math.IsNaN(p) {
			return nil, fmt.Errorf("Sample: dist[%d]=%g: %w", i, p, ErrBadDistribution)
		}
		total += p
		cum[i] = total
	}
	if math.Abs(total-1) > engine.Tolerance {
		return nil, fmt.Errorf("Sample: total mass %.12f: %w", total, ErrBadDistribution)
	}

	outcomes := make([]int, shots)
	for s := 0; s < shots; s++ {
		u := rng.Float64() * total
		idx := sort.SearchFloat64s(cum, u)
		for idx < len(cum) && u == cum[idx] && dist[idx] == 0 {
			idx++ // never land on a zero-probability bin boundary
		}
		if idx >= len(cum) {
			idx = len(cum) - 1
		}
		outcomes[s] = idx
	}

	return outcomes, nil
}
