package assemble

import (
	"github.com/katalvlaran/mflu/ccs"
	"github.com/katalvlaran/mflu/front"
	"github.com/katalvlaran/mflu/kindset"
)

// BeginSupercolumn primes ws.MapCols with the positions of block's own
// pivot columns, so FocusFromChild/FocusFromA can translate an original
// column index into LU1's column position in O(1).
func BeginSupercolumn[T kindset.Numeric](block *front.Block[T], ws *front.Workspace) {
	for k, col := range block.PivotCols {
		ws.MapCols[col] = k
	}
}

// EndSupercolumn clears every MapRows/MapCols entry BeginSupercolumn and the
// focus routines populated, restoring the all-None invariant the next
// supercolumn's focus expects (spec.md §4.8 "cleared at the end of each
// supercolumn").
func EndSupercolumn[T kindset.Numeric](block *front.Block[T], ws *front.Workspace) {
	for _, col := range block.PivotCols {
		ws.MapCols[col] = front.None
	}
	for _, col := range block.NonPivotCols {
		ws.MapCols[col] = front.None
	}
	for _, row := range block.PivotRows {
		ws.MapRows[row] = front.None
	}
	for _, row := range block.NonPivotRows {
		ws.MapRows[row] = front.None
	}
}

// FocusFromChild absorbs child's contribution into block: for every column
// of child.Contrib that is one of block's pivot columns, every live row's
// value is added into LU1, allocating a new pivot-row slot on first sight
// of that row (spec.md §4.8 focus_supercolumn_from_child).
func FocusFromChild[T kindset.Numeric](block *front.Block[T], child *front.Block[T], ws *front.Workspace) {
	contrib := child.Contrib
	if contrib == nil {
		return
	}

	matched := make([]int, 0, contrib.N)
	for _, col := range contrib.Cols[:contrib.N] {
		if ws.MapCols[col] != front.None {
			matched = append(matched, col)
		}
	}

	for _, col := range matched {
		k := ws.MapCols[col]
		physCol := contrib.ColLoc[col]
		rows := append([]int(nil), contrib.Rows[:contrib.M]...)
		for _, row := range rows {
			physRow := contrib.RowLoc[row]
			if physRow == front.None {
				continue
			}
			rowPos := ws.MapRows[row]
			if rowPos == front.None {
				rowPos = len(block.PivotRows)
				block.PivotRows = append(block.PivotRows, row)
				ws.MapRows[row] = rowPos
			}
			v := contrib.Dense().At(physRow, physCol)
			block.LU1.Set(rowPos, k, block.LU1.At(rowPos, k)+v)
		}
		contrib.RemoveCol(contrib.ColLoc[col])
		contrib.UMember = true
	}

	if contrib.Empty() {
		child.Contrib = nil
	}
}

// FocusFromA absorbs the original matrix's contribution to block's pivot
// columns directly from A (spec.md §4.8 focus_supercolumn_from_A).
func FocusFromA[T kindset.Numeric](block *front.Block[T], a *ccs.CCS[T], ws *front.Workspace) {
	for k, col := range block.PivotCols {
		if ws.ColumnCleared[col] {
			continue
		}
		rows, vals := a.Column(col)
		for idx, row := range rows {
			if ws.RowCleared[row] {
				// row already fully output as a U-row by an earlier
				// descendant's focus_rows; its remaining columns are
				// carried forward through that block's Ut2/contrib, not
				// through a second, direct read of A.
				continue
			}
			rowPos := ws.MapRows[row]
			if rowPos == front.None {
				rowPos = len(block.PivotRows)
				block.PivotRows = append(block.PivotRows, row)
				ws.MapRows[row] = rowPos
			}
			block.LU1.Set(rowPos, k, block.LU1.At(rowPos, k)+vals[idx])
		}
		ws.ColumnCleared[col] = true
		block.ColumnsCleared++
	}
}

// FocusRows assembles Ut2, the non-pivot U part, from Aᵀ and from every
// descendant in block's descendant range that still holds a live
// contribution (spec.md §4.8 focus_rows). It returns ru_size, the number of
// non-pivot columns discovered, and appends their original indices to
// block.NonPivotCols.
func FocusRows[T kindset.Numeric](block *front.Block[T], a, aT *ccs.CCS[T], descendants []*front.Block[T], ws *front.Workspace) int {
	ru := 0
	colPos := func(col int) int {
		if p := ws.MapCols[col]; p != front.None {
			return p - len(block.PivotCols)
		}
		return front.None
	}

	for pivotPos, row := range block.PivotRows {
		if !ws.RowCleared[row] {
			cols, vals := aT.Column(row)
			for idx, col := range cols {
				if ws.ColumnCleared[col] {
					continue // already pivoted and fully absorbed by an earlier block
				}
				if ws.MapCols[col] != front.None && ws.MapCols[col] < len(block.PivotCols) {
					continue // pivot column, not part of Ut2
				}
				p := colPos(col)
				if p == front.None {
					p = ru
					ws.MapCols[col] = len(block.PivotCols) + ru
					block.NonPivotCols = append(block.NonPivotCols, col)
					ru++
				}
				block.Ut2.Set(p, pivotPos, block.Ut2.At(p, pivotPos)+vals[idx])
			}
			ws.RowCleared[row] = true
			block.RowsCleared++
		}

		for _, d := range descendants {
			if d.Contrib == nil || !(d.Contrib.LMember || d.Contrib.UMember) {
				continue
			}
			physRow := d.Contrib.RowLoc[row]
			if physRow == front.None {
				continue
			}
			for _, col := range append([]int(nil), d.Contrib.Cols[:d.Contrib.N]...) {
				physCol := d.Contrib.ColLoc[col]
				if physCol == front.None {
					continue
				}
				p := colPos(col)
				if p == front.None {
					p = ru
					ws.MapCols[col] = len(block.PivotCols) + ru
					block.NonPivotCols = append(block.NonPivotCols, col)
					ru++
				}
				v := d.Contrib.Dense().At(physRow, physCol)
				block.Ut2.Set(p, pivotPos, block.Ut2.At(p, pivotPos)+v)
			}
			d.Contrib.RemoveRow(physRow)
			d.Contrib.LMember = true
			if d.Contrib.Empty() {
				d.Contrib = nil
			}
		}
	}

	return ru
}
