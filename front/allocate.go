package front

import (
	"github.com/katalvlaran/mflu/ccs"
	"github.com/katalvlaran/mflu/kindset"
)

// AllocateBlock reserves a Block for supercolumn s: LU1 at leading
// dimension lSize (the symbolic upper bound on frontal rows) by colB
// (the exact supercolumn size), and Ut2 at leading dimension uSize (the
// symbolic upper bound on frontal columns) by colB — spec.md §4.7. PivotCols
// is exact (the supercolumn's own columns are known up front); PivotRows is
// allocated at capacity lSize and sliced down once the dense LU kernel
// reports how many rows it actually used.
//
// LU1 is zeroed on return, matching "allocate_factor_block ... zeros LU1":
// focus (C8) only writes nonzero entries, so the rest of the frontal must
// already read as zero.
func AllocateBlock[T kindset.Numeric](s int, pivotCols []int, lSize, uSize int) *Block[T] {
	colB := len(pivotCols)
	if lSize < 0 || uSize < 0 || colB == 0 {
		return &Block[T]{Supercolumn: s, Valid: false}
	}

	lu1 := ccs.Dense[T]{Values: make([]T, lSize*colB), Ld: lSize, Rows: lSize, Cols: colB}
	ut2 := ccs.Dense[T]{Values: make([]T, uSize*colB), Ld: uSize, Rows: uSize, Cols: colB}

	return &Block[T]{
		Supercolumn: s,
		PivotCols:   append([]int(nil), pivotCols...),
		PivotRows:   make([]int, 0, lSize),
		LU1:         lu1,
		Ut2:         ut2,
		Valid:       true,
	}
}
