package solve

import (
	"fmt"

	"github.com/katalvlaran/mflu/ccs"
	"github.com/katalvlaran/mflu/front"
	"github.com/katalvlaran/mflu/kindset"
)

// Solve runs spec.md §4.12's two passes for one or more right-hand sides:
// b (n x nrhs) holds the input on entry, x (n x nrhs) receives A·x = b's
// solution. blocks must be indexed by supercolumn exactly as numfact and
// schedule produced them — ascending postorder, nil entries allowed for
// supercolumns with no pivot rows (spec.md §4.11's l_size[s]==0 skip).
func Solve[T kindset.Numeric](kernels ccs.Kernels[T], blocks []*front.Block[T], n int, x, b ccs.Dense[T]) error {
	if x.Rows != n || b.Rows != n || x.Cols != b.Cols {
		return fmt.Errorf("solve: dimension mismatch: x is %dx%d, b is %dx%d, want row count %d",
			x.Rows, x.Cols, b.Rows, b.Cols, n)
	}
	nrhs := b.Cols

	offsets, stageRows := blockOffsets(blocks)
	stage := ccs.Dense[T]{Values: make([]T, stageRows*nrhs), Ld: stageRows, Rows: stageRows, Cols: nrhs}

	work := ccs.Dense[T]{Values: make([]T, n*nrhs), Ld: n, Rows: n, Cols: nrhs}
	for j := 0; j < nrhs; j++ {
		for i := 0; i < n; i++ {
			work.Set(i, j, b.At(i, j))
		}
	}

	if err := forward(kernels, blocks, offsets, stage, work); err != nil {
		return err
	}

	return backward(kernels, blocks, offsets, stage, x)
}

// One solves a single right-hand side in place: x and b are length-n
// slices (spec.md §6 solve_one). b is read, never written.
func One[T kindset.Numeric](kernels ccs.Kernels[T], blocks []*front.Block[T], n int, x, b []T) error {
	xd := ccs.Dense[T]{Values: x, Ld: n, Rows: n, Cols: 1}
	bd := ccs.Dense[T]{Values: b, Ld: n, Rows: n, Cols: 1}

	return Solve(kernels, blocks, n, xd, bd)
}

// Many solves nrhs right-hand sides stacked column-major in b (leading
// dimension ldB) into x (leading dimension ldX), per spec.md §6
// solve_many.
func Many[T kindset.Numeric](kernels ccs.Kernels[T], blocks []*front.Block[T], n, nrhs int, x, b []T, ldX, ldB int) error {
	xd := ccs.Dense[T]{Values: x, Ld: ldX, Rows: n, Cols: nrhs}
	bd := ccs.Dense[T]{Values: b, Ld: ldB, Rows: n, Cols: nrhs}

	return Solve(kernels, blocks, n, xd, bd)
}

// blockOffsets returns, for each block index, the row this block's
// segment starts at within the shared "stage" buffer (the concatenation,
// in processing order, of every block's pivot-row count), and the total
// stage row count. A nil block contributes zero rows.
func blockOffsets[T kindset.Numeric](blocks []*front.Block[T]) ([]int, int) {
	offsets := make([]int, len(blocks))
	cursor := 0
	for i, b := range blocks {
		offsets[i] = cursor
		if b != nil {
			cursor += len(b.PivotRows)
		}
	}

	return offsets, cursor
}

// forward is Ly = Pb (spec.md §4.12 "Forward"): for each block in
// processing order, gather its pivot rows from work into its stage
// segment, solve with L1, then push the Schur correction into work at
// this block's non-pivot rows so the ancestor that inherits those same
// original row indices sees the already-corrected right-hand side.
func forward[T kindset.Numeric](kernels ccs.Kernels[T], blocks []*front.Block[T], offsets []int, stage, work ccs.Dense[T]) error {
	for i, block := range blocks {
		if block == nil {
			continue
		}

		rowB := len(block.PivotRows)
		seg := stage.Sub(offsets[i], 0, rowB, stage.Cols)
		for k, row := range block.PivotRows {
			for j := 0; j < work.Cols; j++ {
				seg.Set(k, j, work.At(row, j))
			}
		}

		l1 := block.LU1.Sub(0, 0, rowB, rowB)
		kernels.UnitLowerLeftTriSolve(l1, seg)

		nnp := len(block.NonPivotRows)
		if nnp == 0 {
			continue
		}

		l2 := block.LU1.Sub(rowB, 0, nnp, rowB)
		scratch := ccs.Dense[T]{Values: make([]T, nnp*work.Cols), Ld: nnp, Rows: nnp, Cols: work.Cols}
		for k, row := range block.NonPivotRows {
			for j := 0; j < work.Cols; j++ {
				scratch.Set(k, j, work.At(row, j))
			}
		}
		if err := kernels.CaddMAB(scratch, l2, seg); err != nil {
			return err
		}
		for k, row := range block.NonPivotRows {
			for j := 0; j < work.Cols; j++ {
				work.Set(row, j, scratch.At(k, j))
			}
		}
	}

	return nil
}

// backward is Uz = y, x = Qz (spec.md §4.12 "Back"): blocks run in
// reverse, so a block's non-pivot columns (shared with its parent) are
// already solved and sitting in x by the time this block reads them.
func backward[T kindset.Numeric](kernels ccs.Kernels[T], blocks []*front.Block[T], offsets []int, stage, x ccs.Dense[T]) error {
	for i := len(blocks) - 1; i >= 0; i-- {
		block := blocks[i]
		if block == nil {
			continue
		}

		rowB := len(block.PivotRows)
		seg := stage.Sub(offsets[i], 0, rowB, stage.Cols)

		if ru := len(block.NonPivotCols); ru > 0 {
			scratch := ccs.Dense[T]{Values: make([]T, ru*x.Cols), Ld: ru, Rows: ru, Cols: x.Cols}
			for k, col := range block.NonPivotCols {
				for j := 0; j < x.Cols; j++ {
					scratch.Set(k, j, x.At(col, j))
				}
			}
			// Ut2 is stored transposed (spec.md §4.10), so the correction
			// y -= U2·scratch (U2 = Ut2ᵀ) is exactly CaddMATB(seg, Ut2, scratch).
			if err := kernels.CaddMATB(seg, block.Ut2, scratch); err != nil {
				return err
			}
		}

		u1 := block.LU1.Sub(0, 0, rowB, rowB)
		if err := kernels.UpperLeftTriSolve(u1, seg); err != nil {
			return err
		}

		for k, col := range block.PivotCols {
			for j := 0; j < x.Cols; j++ {
				x.Set(col, j, seg.At(k, j))
			}
		}
	}

	return nil
}
