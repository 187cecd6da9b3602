package fixtures

import "github.com/katalvlaran/mflu/ccs"

// SingularZeroColumn builds a 2x2 matrix with an all-zero column (spec.md
// §8 scenario 6): column 0 has no nonzero entries, so no pivot can ever
// meet any positive threshold.
func SingularZeroColumn() (*ccs.CCS[float64], []int) {
	t := newTriplets(2, 2)
	t.add(1, 1, 1)

	return t.build(2), []int{0, 1}
}
