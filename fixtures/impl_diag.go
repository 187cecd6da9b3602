package fixtures

import "github.com/katalvlaran/mflu/ccs"

// Diag4 builds A = diag(2,3,5,7) with the identity column order (spec.md
// §8 scenario 1): every supercolumn is a trivial singleton, L is the
// identity, and U is the diagonal itself.
func Diag4() (*ccs.CCS[float64], []int) {
	t := newTriplets(4, 4)
	diag := []float64{2, 3, 5, 7}
	for i, v := range diag {
		t.add(i, i, v)
	}

	return t.build(4), []int{0, 1, 2, 3}
}
