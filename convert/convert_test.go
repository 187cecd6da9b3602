package convert_test

import (
	"testing"

	"github.com/katalvlaran/mflu/assemble"
	"github.com/katalvlaran/mflu/ccs"
	"github.com/katalvlaran/mflu/convert"
	"github.com/katalvlaran/mflu/front"
	"github.com/katalvlaran/mflu/numfact"
	"github.com/stretchr/testify/require"
)

// factorTridiagonal reproduces the two-block factorization numfact_test.go
// and solve_test.go hand-trace: A = [[2,1,0],[1,3,1],[0,1,4]], child
// covering column 0, parent covering columns {1,2}. Both pivot row and
// pivot column orders come out identity here.
func factorTridiagonal(t *testing.T) []*front.Block[float64] {
	t.Helper()
	colptr := []int{0, 2, 5, 7}
	rowind := []int{0, 1, 0, 1, 2, 1, 2}
	values := []float64{2, 1, 1, 3, 1, 1, 4}
	a, err := ccs.New[float64](3, 3, colptr, rowind, values)
	require.NoError(t, err)
	aT := a.Transpose()

	ws := front.NewWorkspace(3)
	p := &numfact.Params[float64]{N: 3, A: a, AT: aT, Threshold: 1.0, Kernels: ccs.RefKernels[float64]{}}

	child := front.AllocateBlock[float64](0, []int{0}, 2, 1)
	assemble.BeginSupercolumn(child, ws)
	assemble.FocusFromA(child, a, ws)
	require.NoError(t, numfact.Factor(p, 0, child, nil, ws, false, nil))

	parent := front.AllocateBlock[float64](1, []int{1, 2}, 3, 1)
	assemble.BeginSupercolumn(parent, ws)
	assemble.FocusFromChild(parent, child, ws)
	assemble.FocusFromA(parent, a, ws)
	require.NoError(t, numfact.Factor(p, 1, parent, []*front.Block[float64]{child}, ws, false, nil))

	return []*front.Block[float64]{child, parent}
}

func TestToCCSReproducesTridiagonalFactor(t *testing.T) {
	blocks := factorTridiagonal(t)

	l, u, r, c, err := convert.ToCCS(blocks, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, r)
	require.Equal(t, []int{0, 1, 2}, c)

	dense := func(m *ccs.CCS[float64]) [3][3]float64 {
		var out [3][3]float64
		for j := 0; j < 3; j++ {
			rows, vals := m.Column(j)
			for idx, row := range rows {
				out[row][j] = vals[idx]
			}
		}
		return out
	}

	wantL := [3][3]float64{{1, 0, 0}, {0.5, 1, 0}, {0, 0.4, 1}}
	wantU := [3][3]float64{{2, 1, 0}, {0, 2.5, 1}, {0, 0, 3.6}}

	gotL, gotU := dense(l), dense(u)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDeltaf(t, wantL[i][j], gotL[i][j], 1e-9, "L[%d][%d]", i, j)
			require.InDeltaf(t, wantU[i][j], gotU[i][j], 1e-9, "U[%d][%d]", i, j)
		}
	}
}

// factor2x2Swapped reproduces numfact_test.go's partial-pivot swap case:
// A = [[4,3],[6,3]] forces row 1 to pivot ahead of row 0, so PivotRows
// comes out [1,0] — a non-identity row permutation this test exercises
// deliberately, since the tridiagonal fixture alone never does.
func factor2x2Swapped(t *testing.T) []*front.Block[float64] {
	t.Helper()
	colptr := []int{0, 2, 4}
	rowind := []int{0, 1, 0, 1}
	values := []float64{4, 6, 3, 3}
	a, err := ccs.New[float64](2, 2, colptr, rowind, values)
	require.NoError(t, err)
	aT := a.Transpose()

	ws := front.NewWorkspace(2)
	block := front.AllocateBlock[float64](0, []int{0, 1}, 2, 0)
	assemble.BeginSupercolumn(block, ws)
	assemble.FocusFromA(block, a, ws)

	p := &numfact.Params[float64]{N: 2, A: a, AT: aT, Threshold: 1.0, Kernels: ccs.RefKernels[float64]{}}
	require.NoError(t, numfact.Factor(p, 0, block, nil, ws, false, nil))
	require.Equal(t, []int{1, 0}, block.PivotRows)

	return []*front.Block[float64]{block}
}

func TestToCCSAppliesNonIdentityRowPermutation(t *testing.T) {
	blocks := factor2x2Swapped(t)

	l, u, r, c, err := convert.ToCCS(blocks, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, r)
	require.Equal(t, []int{0, 1}, c)

	dense := func(m *ccs.CCS[float64]) [2][2]float64 {
		var out [2][2]float64
		for j := 0; j < 2; j++ {
			rows, vals := m.Column(j)
			for idx, row := range rows {
				out[row][j] = vals[idx]
			}
		}
		return out
	}

	gotL, gotU := dense(l), dense(u)
	wantL := [2][2]float64{{1, 0}, {2.0 / 3.0, 1}}
	wantU := [2][2]float64{{6, 3}, {0, 1}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.InDeltaf(t, wantL[i][j], gotL[i][j], 1e-9, "L[%d][%d]", i, j)
			require.InDeltaf(t, wantU[i][j], gotU[i][j], 1e-9, "U[%d][%d]", i, j)
		}
	}

	// L*U must equal A with rows permuted by r and columns by c: here
	// c is identity, so column order is untouched; row k of L*U must equal
	// A's row r[k].
	lu := func(i, j int) float64 { return gotL[i][0]*gotU[0][j] + gotL[i][1]*gotU[1][j] }
	wantRow0 := []float64{6, 3} // A's row r[0]=1
	wantRow1 := []float64{4, 3} // A's row r[1]=0
	require.InDelta(t, wantRow0[0], lu(0, 0), 1e-9)
	require.InDelta(t, wantRow0[1], lu(0, 1), 1e-9)
	require.InDelta(t, wantRow1[0], lu(1, 0), 1e-9)
	require.InDelta(t, wantRow1[1], lu(1, 1), 1e-9)
}

func TestToCCSRejectsIncompleteFactor(t *testing.T) {
	blocks := factorTridiagonal(t)
	_, _, _, _, err := convert.ToCCS(blocks[:1], 3)
	require.ErrorIs(t, err, convert.ErrIncompleteFactor)
}
