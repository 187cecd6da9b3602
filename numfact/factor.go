package numfact

import (
	"github.com/katalvlaran/mflu/assemble"
	"github.com/katalvlaran/mflu/ccs"
	"github.com/katalvlaran/mflu/front"
	"github.com/katalvlaran/mflu/kindset"
)

// Params bundles the external collaborators one supercolumn's numeric
// factorization reads from: the original matrix, its transpose (for
// focus_rows), the threshold for partial pivoting, and the dense kernel set
// (spec.md §6 lists these as the core's external interfaces).
type Params[T kindset.Numeric] struct {
	N         int // matrix order, sizes every Contribution's RowLoc/ColLoc
	A, AT     *ccs.CCS[T]
	Threshold float64
	Kernels   ccs.Kernels[T]

	// Spawner, if set, routes align-add's LUSon scatter through
	// assemble.AlignAddParallel instead of the sequential form (spec.md
	// §4.11's per-block fork-join). nil keeps Factor single-threaded.
	Spawner assemble.Spawner
}

// Factor runs spec.md §4.10 steps 1-10 for supercolumn s. block must already
// hold the front assembled by focus-from-children and focus-from-A (package
// assemble), in that order. children holds s's direct children's blocks,
// used for focus_rows and align-add. If onlyChildOfParent is set,
// parentPivotCols names the parent's pivot columns so step 5's reorder can
// identify the columns-in-parent slice.
//
// On success block.Valid is true, block.PivotRows/NonPivotRows and
// block.NonPivotCols hold the final row/column partition, and block.Contrib
// (possibly nil, if this supercolumn produces no Schur complement) holds the
// contribution for s's ancestors.
func Factor[T kindset.Numeric](p *Params[T], s int, block *front.Block[T], children []*front.Block[T], ws *front.Workspace, onlyChildOfParent bool, parentPivotCols []int) error {
	colB := len(block.PivotCols)
	l := len(block.PivotRows)
	rowB := l
	if colB < rowB {
		rowB = colB
	}

	block.LU1 = compressLeadingDim(block.LU1.Values, block.LU1.Ld, l, l, colB)

	var degrees []float64
	if p.Threshold < 1 {
		degrees = rowDegrees(p.AT, block.PivotRows, children)
	}

	if err := p.Kernels.LU(block.LU1, p.Threshold, degrees, block.PivotRows); err != nil {
		block.Valid = false
		return wrapBlockError(s, err)
	}

	block.NonPivotRows = append([]int(nil), block.PivotRows[rowB:]...)
	block.PivotRows = block.PivotRows[:rowB]

	ru := assemble.FocusRows(block, p.A, p.AT, children, ws)
	block.Ut2 = compressLeadingDim(block.Ut2.Values, block.Ut2.Ld, ru, ru, rowB)

	if onlyChildOfParent {
		block.NumColsInParent = reorderNonPivotColumns(block, parentPivotCols)
	}

	l1 := block.LU1.Sub(0, 0, rowB, rowB)
	p.Kernels.UnitLowerRightTriSolve(l1, block.Ut2)

	if ru > 0 && l > rowB {
		block.Contrib = front.NewContribution[T](block.NonPivotRows, block.NonPivotCols, p.N)

		if p.Spawner != nil {
			assemble.AlignAddParallel(p.Spawner, *block.Contrib, children, ws)
		} else {
			assemble.AlignAdd(*block.Contrib, children, ws)
		}

		l2 := block.LU1.Sub(rowB, 0, l-rowB, rowB)
		if err := p.Kernels.CaddMABT(block.Contrib.Dense(), l2, block.Ut2); err != nil {
			block.Valid = false
			return wrapBlockError(s, err)
		}
	}

	block.Valid = true
	assemble.EndSupercolumn(block, ws)

	return nil
}

// compressLeadingDim repacks values (column-major, old leading dim oldLd)
// into an equivalent view with leading dim newLd <= oldLd, in place
// (spec.md §4.10 step 1, "compress LU1 from leading-dim ml to leading-dim
// l"). copy() is safe under overlap (Go defines it as memmove-style).
func compressLeadingDim[T kindset.Numeric](values []T, oldLd, newLd, rows, cols int) ccs.Dense[T] {
	if oldLd != newLd {
		for j := 0; j < cols; j++ {
			copy(values[j*newLd:j*newLd+rows], values[j*oldLd:j*oldLd+rows])
		}
	}

	return ccs.Dense[T]{Values: values, Ld: newLd, Rows: rows, Cols: cols}
}

// rowDegrees estimates, for each candidate pivot row, how many live
// columns still touch it: the count of that row's Aᵀ entries plus the
// column-count of every descendant contribution that still has a live
// entry at that row (spec.md §4.10 step 2). Only computed when
// threshold < 1, since the unthresholded case never consults it.
func rowDegrees[T kindset.Numeric](aT *ccs.CCS[T], rows []int, children []*front.Block[T]) []float64 {
	degrees := make([]float64, len(rows))
	for i, row := range rows {
		degrees[i] = float64(len(aT.ColumnRows(row)))
		for _, child := range children {
			if child.Contrib == nil {
				continue
			}
			if row < len(child.Contrib.RowLoc) && child.Contrib.RowLoc[row] != front.None {
				degrees[i] += float64(child.Contrib.N)
			}
		}
	}

	return degrees
}

// reorderNonPivotColumns moves the non-pivot columns block shares with its
// parent to the front of block.NonPivotCols (swap-based), keeping Ut2's
// rows in lock-step since physical row p of Ut2 corresponds to
// NonPivotCols[p] (spec.md §4.10 step 5). It returns num_cols_in_parent.
func reorderNonPivotColumns[T kindset.Numeric](block *front.Block[T], parentPivotCols []int) int {
	inParent := make(map[int]bool, len(parentPivotCols))
	for _, c := range parentPivotCols {
		inParent[c] = true
	}

	next := 0
	for i, col := range block.NonPivotCols {
		if !inParent[col] {
			continue
		}
		if i != next {
			block.NonPivotCols[i], block.NonPivotCols[next] = block.NonPivotCols[next], block.NonPivotCols[i]
			swapRows(block.Ut2, i, next)
		}
		next++
	}

	return next
}

// swapRows exchanges physical rows i and j of a row-major-intent view (all
// Cols entries for each row), used to keep Ut2 synchronized with
// NonPivotCols during the only-child reorder.
func swapRows[T kindset.Numeric](d ccs.Dense[T], i, j int) {
	if i == j {
		return
	}
	for c := 0; c < d.Cols; c++ {
		d.Values[c*d.Ld+i], d.Values[c*d.Ld+j] = d.Values[c*d.Ld+j], d.Values[c*d.Ld+i]
	}
}
