package fixtures

import "github.com/katalvlaran/mflu/ccs"

// triplets accumulates (row, value) entries per column and packs them into
// CCS on build, so the impl_*.go constructors below can describe a matrix
// by its nonzero pattern directly instead of hand-counting colptr offsets.
type triplets struct {
	cols int
	rows [][]int
	vals [][]float64
}

func newTriplets(rows, cols int) *triplets {
	return &triplets{cols: cols, rows: make([][]int, cols), vals: make([][]float64, cols)}
}

func (t *triplets) add(row, col int, val float64) {
	t.rows[col] = append(t.rows[col], row)
	t.vals[col] = append(t.vals[col], val)
}

func (t *triplets) build(rows int) *ccs.CCS[float64] {
	colptr := make([]int, t.cols+1)
	var rowind []int
	var values []float64
	for j := 0; j < t.cols; j++ {
		rowind = append(rowind, t.rows[j]...)
		values = append(values, t.vals[j]...)
		colptr[j+1] = len(rowind)
	}

	m, err := ccs.New[float64](rows, t.cols, colptr, rowind, values)
	if err != nil {
		// Every impl_*.go constructor emits in-range, well-formed triplets;
		// a failure here is a fixture bug, not a caller-triggered one.
		panic(err)
	}

	return m
}
