// Package sim: single-circuit execution.

package sim

import (
	"fmt"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/engine"
	"github.com/katalvlaran/qsim/measure"
	"github.com/katalvlaran/qsim/result"
)

// Run executes c for the given number of shots and returns the sparse
// counts mapping (Σ counts == shots). The circuit is never mutated, so
// the same circuit may be run repeatedly; with WithSeed the counts are
// identical across invocations.
//
// Pipeline: fresh |0...0⟩ state → gates in program order (strictly
// sequential, each gate depends on the full state left by the previous
// one) → Born-rule marginal over the measured qubits → shots i.i.d.
// draws → tally.
//
// Complexity: O(G·2^N + shots·log 2^M).
func Run(c *circuit.Circuit, shots int, opts ...Option) (result.Counts, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}
	if shots <= 0 {
		return nil, fmt.Errorf("Run(shots=%d): %w", shots, ErrNonPositiveShots)
	}
	cfg := resolve(opts)

	return run(c, shots, cfg)
}

// run is the shared body of Run and RunAll; cfg is already resolved.
func run(c *circuit.Circuit, shots int, cfg runConfig) (result.Counts, error) {
	var engOpts []engine.Option
	if cfg.memLimit > 0 {
		engOpts = append(engOpts, engine.WithMemoryLimit(cfg.memLimit))
	}
	st, err := engine.NewState(c.Qubits(), engOpts...)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	for i, ins := range c.Instructions() {
		if err = st.Apply(ins.Gate(), ins.Qubits()...); err != nil {
			// Identify the failing gate: position and name.
			return nil, fmt.Errorf("Run: gate %d (%s): %w", i, ins.Gate(), err)
		}
	}

	measured := c.Measured()
	dist, err := measure.Distribution(st, measured)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	var smpOpts []measure.Option
	switch {
	case cfg.rng != nil:
		smpOpts = append(smpOpts, measure.WithRand(cfg.rng))
	case cfg.seeded:
		smpOpts = append(smpOpts, measure.WithSeed(cfg.seed))
	}
	outcomes, err := measure.Sample(dist, shots, smpOpts...)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	return result.Tally(outcomes, len(measured)), nil
}
