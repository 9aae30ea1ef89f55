package result_test

import (
	"fmt"

	"github.com/katalvlaran/qsim/result"
)

// ExampleCounts_StdErr computes the error-bar half-width for an
// outcome observed 750 times out of 1000 shots.
func ExampleCounts_StdErr() {
	counts := result.Counts{"0": 250, "1": 750}

	fmt.Printf("p̂(\"1\") = %.3f\n", counts.Probability("1", 1000))
	fmt.Printf("stderr  = %.4f\n", counts.StdErr("1", 1000))
	// Output:
	// p̂("1") = 0.750
	// stderr  = 0.0137
}

// ExampleTally shows the sparse representation: only observed outcomes
// appear in the mapping.
func ExampleTally() {
	counts := result.Tally([]int{3, 0, 3, 3}, 2)

	fmt.Println("\"11\":", counts["11"])
	fmt.Println("\"00\":", counts["00"])
	_, present := counts["01"]
	fmt.Println("\"01\" present:", present)
	// Output:
	// "11": 3
	// "00": 1
	// "01" present: false
}
