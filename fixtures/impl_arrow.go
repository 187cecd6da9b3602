package fixtures

import "github.com/katalvlaran/mflu/ccs"

// Arrow6 builds a 6x6 arrow matrix (spec.md §8 scenario 4): diagonal on
// columns 0..4, with the last row and column dense (the arrow head).
// Column 5's diagonal (3) is large enough relative to the five rank-1
// contributions (each 1*1/2) that the eliminated Schur complement
// (3 - 5*0.5 = 0.5) stays nonzero.
func Arrow6() (*ccs.CCS[float64], []int) {
	t := newTriplets(6, 6)
	for j := 0; j < 5; j++ {
		t.add(j, j, 2)
		t.add(5, j, 1)
	}
	for i := 0; i < 5; i++ {
		t.add(i, 5, 1)
	}
	t.add(5, 5, 3)

	return t.build(6), []int{0, 1, 2, 3, 4, 5}
}
