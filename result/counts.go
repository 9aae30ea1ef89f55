// Package result: outcome aggregation.

package result

import (
	"math"
)

// Counts maps observed bitstrings to occurrence counts. The
// representation is sparse: only observed outcomes appear.
type Counts map[string]int

// Bitstring renders outcome index `o` over `bits` measured qubits,
// MSB-first, with the first measured qubit on the least-significant
// bit. Bitstring(3, 2) == "11", Bitstring(1, 2) == "01".
func Bitstring(o, bits int) string {
	buf := make([]byte, bits)
	for j := 0; j < bits; j++ {
		if o&(1<<j) != 0 {
			buf[bits-1-j] = '1'
		} else {
			buf[bits-1-j] = '0'
		}
	}

	return string(buf)
}

// Tally folds sampled outcome indices into sparse counts. The total of
// the result equals len(outcomes), i.e. the shot count of the run.
// Complexity: O(len(outcomes)).
func Tally(outcomes []int, bits int) Counts {
	counts := make(Counts)
	for _, o := range outcomes {
		counts[Bitstring(o, bits)]++
	}

	return counts
}

// Total returns the sum of all counts (the shot count of the run).
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}

	return total
}

// Probability returns the observed probability p̂ = count/shots of one
// outcome. Returns 0 for shots ≤ 0.
func (c Counts) Probability(key string, shots int) float64 {
	if shots <= 0 {
		return 0
	}

	return float64(c[key]) / float64(shots)
}

// StdErr returns the sampling standard error √(p̂(1−p̂)/shots) of one
// outcome — the error-bar half-width for a histogram of the counts.
// Returns 0 for shots ≤ 0.
func (c Counts) StdErr(key string, shots int) float64 {
	if shots <= 0 {
		return 0
	}
	p := c.Probability(key, shots)

	return math.Sqrt(p * (1 - p) / float64(shots))
}
