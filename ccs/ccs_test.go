package ccs_test

import (
	"testing"

	"github.com/katalvlaran/mflu/ccs"
	"github.com/stretchr/testify/require"
)

// buildDiag4 builds diag(2,3,5,7) in CCS form, scenario 1 of spec.md §8.
func buildDiag4(t *testing.T) *ccs.CCS[float64] {
	t.Helper()
	colptr := []int{0, 1, 2, 3, 4}
	rowind := []int{0, 1, 2, 3}
	values := []float64{2, 3, 5, 7}
	m, err := ccs.New[float64](4, 4, colptr, rowind, values)
	require.NoError(t, err)
	return m
}

func TestNewRejectsMalformed(t *testing.T) {
	_, err := ccs.New[float64](2, 2, []int{0, 1}, nil, nil)
	require.ErrorIs(t, err, ccs.ErrMalformed)

	_, err = ccs.New[float64](0, 2, []int{0, 0, 0}, nil, nil)
	require.ErrorIs(t, err, ccs.ErrBadShape)
}

func TestTransposeRoundTrip(t *testing.T) {
	m := buildDiag4(t)
	mt := m.Transpose()
	require.Equal(t, m.NumRows(), mt.NumCols())
	require.Equal(t, m.NumCols(), mt.NumRows())
	for j := 0; j < m.NumCols(); j++ {
		rows, vals := m.Column(j)
		trows, tvals := mt.Column(j) // diagonal matrix: Aᵀ column j == A column j
		require.Equal(t, rows, trows)
		require.Equal(t, vals, tvals)
	}
}

func TestRefKernelsLUNoPivotNeeded(t *testing.T) {
	// 5x5 tridiagonal, diagonally dominant: no pivoting required.
	n := 5
	a := ccs.Dense[float64]{Values: make([]float64, n*n), Ld: n, Rows: n, Cols: n}
	for i := 0; i < n; i++ {
		a.Set(i, i, 2)
		if i > 0 {
			a.Set(i, i-1, -1)
		}
		if i < n-1 {
			a.Set(i, i+1, -1)
		}
	}
	pivots := make([]int, n)
	for i := range pivots {
		pivots[i] = i
	}
	var k ccs.RefKernels[float64]
	require.NoError(t, k.LU(a, 1.0, nil, pivots))
	for i := 0; i < n; i++ {
		require.Equal(t, i, pivots[i])
	}
}

func TestRefKernelsLUPivots(t *testing.T) {
	// A = [[4,3],[6,3]]: scenario 2 of spec.md §8. Pivot on row 1 (|6|>|4|).
	a := ccs.Dense[float64]{Values: []float64{4, 6, 3, 3}, Ld: 2, Rows: 2, Cols: 2}
	pivots := []int{0, 1}
	var k ccs.RefKernels[float64]
	require.NoError(t, k.LU(a, 1.0, nil, pivots))
	require.Equal(t, []int{1, 0}, pivots)
	// After pivoting row0<-orig row1: U = [[6,3],[0,1]], L below diag = 4/6=2/3.
	require.InDelta(t, 6.0, a.At(0, 0), 1e-12)
	require.InDelta(t, 3.0, a.At(0, 1), 1e-12)
	require.InDelta(t, 2.0/3.0, a.At(1, 0), 1e-12)
	require.InDelta(t, 1.0, a.At(1, 1), 1e-12)
}

func TestRefKernelsSingular(t *testing.T) {
	a := ccs.Dense[float64]{Values: []float64{0, 0, 0, 0}, Ld: 2, Rows: 2, Cols: 2}
	var k ccs.RefKernels[float64]
	err := k.LU(a, 1.0, nil, []int{0, 1})
	require.ErrorIs(t, err, ccs.ErrSingular)
}

func TestCaddMAB(t *testing.T) {
	a := ccs.Dense[float64]{Values: []float64{1, 0, 0, 1}, Ld: 2, Rows: 2, Cols: 2} // I
	b := ccs.Dense[float64]{Values: []float64{2, 0, 0, 2}, Ld: 2, Rows: 2, Cols: 2} // 2I
	c := ccs.Dense[float64]{Values: []float64{5, 5, 5, 5}, Ld: 2, Rows: 2, Cols: 2}
	var k ccs.RefKernels[float64]
	require.NoError(t, k.CaddMAB(c, a, b))
	require.InDelta(t, 3.0, c.At(0, 0), 1e-12)
	require.InDelta(t, 3.0, c.At(1, 1), 1e-12)
	require.InDelta(t, 5.0, c.At(0, 1), 1e-12)
}
