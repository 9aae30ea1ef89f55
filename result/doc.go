// Package result tallies sampled measurement outcomes into counts
// keyed by classical bitstring.
//
// What:
//
//   - Counts: sparse map from observed bitstring to occurrence count.
//     Bitstrings with zero occurrences are absent, never present with
//     value 0. The counts of a run always sum to the requested shots.
//   - Tally: folds raw outcome indices into Counts.
//   - Bitstring: renders an outcome index in the register convention —
//     qubit 0 (the first measured qubit) on the least-significant bit,
//     printed MSB-first.
//   - Counts.StdErr: the sampling standard error √(p̂(1−p̂)/shots) for
//     an observed outcome, the quantity behind histogram error bars.
//
// Complexity: Tally is O(shots); accessors are O(1) per key,
// Total is O(distinct outcomes).
package result
