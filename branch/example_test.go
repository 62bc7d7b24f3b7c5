package branch_test

import (
	"fmt"

	"github.com/katalvlaran/hwbench/branch"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FilterSum
////////////////////////////////////////////////////////////////////////////////

// ExampleFilterSum demonstrates the threshold filter on a tiny fixed array.
// Scenario:
//
//   - data = [200, 10, 255, 50, 128, 127, 5, 255]
//   - elements ≥ 128 contribute: 200 + 255 + 128 + 255 = 838
//   - 127 is one below the threshold and is skipped
//
// Complexity: O(n)
func ExampleFilterSum() {
	data := []int{200, 10, 255, 50, 128, 127, 5, 255}
	fmt.Println("sum =", branch.FilterSum(data))

	// Output:
	// sum = 838
}
