// Package measure turns a finished state vector into classical
// outcomes: the Born-rule probability distribution over the measured
// qubits, and finite-shot sampling from it.
//
// What:
//
//   - Distribution: deterministic, pure marginalization — for each
//     outcome bitstring, sum |amplitude|² over every basis state
//     consistent with it. Computed once per run.
//   - Sample: `shots` independent, identically distributed draws from
//     that distribution. Drawing is the simulator's only stochastic
//     step; randomness is injected through WithSeed/WithRand so a run
//     is exactly reproducible — never read from hidden global state.
//
// Sampling does not collapse or consume the state: each shot models an
// independent execution of the same circuit from the same initial
// state, so all shots draw from the same fixed distribution.
//
// Conventions: measured qubits are sorted ascending; the j-th measured
// qubit (in that order) occupies bit j of the outcome index, keeping
// the register convention (qubit 0 = LSB).
//
// Complexity:
//
//   - Distribution: O(2^N · M) for M measured qubits; O(2^M) memory.
//   - Sample: O(2^M) to build the cumulative table, O(log 2^M) per
//     draw via binary search.
//
// Errors:
//
//   - ErrNilState, ErrNoMeasuredQubits, ErrQubitOutOfRange,
//     ErrDuplicateQubit — malformed marginalization requests.
//   - ErrNonPositiveShots, ErrBadDistribution — malformed sampling
//     requests (a distribution with negative mass or a total far
//     from 1 is rejected, not repaired).
package measure
