package fixtures_test

import (
	"testing"

	"github.com/katalvlaran/mflu/fixtures"
	"github.com/stretchr/testify/require"
)

func TestDiag4(t *testing.T) {
	a, order := fixtures.Diag4()
	require.Equal(t, []int{0, 1, 2, 3}, order)
	require.Equal(t, 4, a.NumRows())
	require.Equal(t, 4, a.NumCols())
	want := []float64{2, 3, 5, 7}
	for j, v := range want {
		rows, vals := a.Column(j)
		require.Equal(t, []int{j}, rows)
		require.Equal(t, []float64{v}, vals)
	}
}

func TestPivot2x2(t *testing.T) {
	a, order := fixtures.Pivot2x2()
	require.Equal(t, []int{0, 1}, order)
	rows0, vals0 := a.Column(0)
	require.Equal(t, []int{0, 1}, rows0)
	require.Equal(t, []float64{4, 6}, vals0)
	rows1, vals1 := a.Column(1)
	require.Equal(t, []int{0, 1}, rows1)
	require.Equal(t, []float64{3, 3}, vals1)
}

func TestTridiagonal(t *testing.T) {
	a, order := fixtures.Tridiagonal(5, 2, -1)
	require.Len(t, order, 5)
	require.Equal(t, 5, a.NumRows())
	require.Equal(t, 5, a.NumCols())
	require.Equal(t, 13, a.NNZ()) // 5 diag + 4*2 off-diagonal

	rows2, vals2 := a.Column(2)
	require.ElementsMatch(t, []int{1, 2, 3}, rows2)
	for idx, row := range rows2 {
		if row == 2 {
			require.Equal(t, 2.0, vals2[idx])
		} else {
			require.Equal(t, -1.0, vals2[idx])
		}
	}
}

func TestArrow6(t *testing.T) {
	a, order := fixtures.Arrow6()
	require.Len(t, order, 6)
	require.Equal(t, 6, a.NumRows())
	require.Equal(t, 6, a.NumCols())

	for j := 0; j < 5; j++ {
		rows, vals := a.Column(j)
		require.ElementsMatch(t, []int{j, 5}, rows)
		for idx, row := range rows {
			if row == j {
				require.Equal(t, 2.0, vals[idx])
			} else {
				require.Equal(t, 1.0, vals[idx])
			}
		}
	}
	rows5, vals5 := a.Column(5)
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, rows5)
	for idx, row := range rows5 {
		if row == 5 {
			require.Equal(t, 3.0, vals5[idx])
		} else {
			require.Equal(t, 1.0, vals5[idx])
		}
	}
}

func TestSingularZeroColumn(t *testing.T) {
	a, order := fixtures.SingularZeroColumn()
	require.Len(t, order, 2)
	rows0, _ := a.Column(0)
	require.Empty(t, rows0)
	rows1, vals1 := a.Column(1)
	require.Equal(t, []int{1}, rows1)
	require.Equal(t, []float64{1}, vals1)
}

// TestFourWaySeparator50DiagonallyDominant hand-verifies the coupling-weight
// bound argued in impl_separator.go's doc comment: every column's diagonal
// exceeds the absolute sum of its off-diagonal entries, so threshold-1.0
// partial pivoting never needs to swap away from the natural order.
func TestFourWaySeparator50DiagonallyDominant(t *testing.T) {
	a, order := fixtures.FourWaySeparator50()
	require.Len(t, order, 50)
	require.Equal(t, 50, a.NumRows())
	require.Equal(t, 50, a.NumCols())

	for j := 0; j < 50; j++ {
		rows, vals := a.Column(j)
		var diag, offSum float64
		for idx, row := range rows {
			if row == j {
				diag = vals[idx]
			} else {
				v := vals[idx]
				if v < 0 {
					v = -v
				}
				offSum += v
			}
		}
		require.Greaterf(t, diag, offSum, "column %d not diagonally dominant: diag=%v offSum=%v", j, diag, offSum)
	}
}
