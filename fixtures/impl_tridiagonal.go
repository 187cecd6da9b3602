package fixtures

import "github.com/katalvlaran/mflu/ccs"

// Tridiagonal builds an n x n tridiagonal matrix with diag on the main
// diagonal and off on both neighboring diagonals, identity column order.
// n=5, diag=2, off=-1 reproduces spec.md §8 scenario 3.
func Tridiagonal(n int, diag, off float64) (*ccs.CCS[float64], []int) {
	t := newTriplets(n, n)
	for j := 0; j < n; j++ {
		if j > 0 {
			t.add(j-1, j, off)
		}
		t.add(j, j, diag)
		if j+1 < n {
			t.add(j+1, j, off)
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	return t.build(n), order
}
