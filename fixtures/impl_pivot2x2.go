package fixtures

import "github.com/katalvlaran/mflu/ccs"

// Pivot2x2 builds A = [[4,3],[6,3]] (spec.md §8 scenario 2): with
// threshold 1.0, row 1 must pivot ahead of row 0 on column 0 since
// |6| > |4|.
func Pivot2x2() (*ccs.CCS[float64], []int) {
	t := newTriplets(2, 2)
	t.add(0, 0, 4)
	t.add(1, 0, 6)
	t.add(0, 1, 3)
	t.add(1, 1, 3)

	return t.build(2), []int{0, 1}
}
