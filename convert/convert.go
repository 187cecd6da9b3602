package convert

import (
	"github.com/katalvlaran/mflu/ccs"
	"github.com/katalvlaran/mflu/front"
	"github.com/katalvlaran/mflu/kindset"
)

// ToCCS packs a factored supercolumn block sequence into plain CCS
// matrices (spec.md §4.13 to_ccs): L (unit lower triangular) and U (upper
// triangular), plus the row and column permutations r, c such that
// L*U = P_r*A*P_c with r[k]/c[k] the original row/column landing at
// permuted position k. blocks must be indexed by supercolumn exactly as
// numfact/schedule produced them; a nil entry is a supercolumn with no
// pivot rows and contributes nothing.
func ToCCS[T kindset.Numeric](blocks []*front.Block[T], n int) (l, u *ccs.CCS[T], r, c []int, err error) {
	r, c = concatPivots(blocks)
	if len(r) != n || len(c) != n {
		return nil, nil, nil, nil, ErrIncompleteFactor
	}
	rowPerm, colPerm := invert(r), invert(c)

	l = buildL(blocks, n)
	l.PermuteRowsInplace(rowPerm)

	uT := buildUT(blocks, n)
	uT.PermuteRowsInplace(colPerm)
	u = uT.Transpose()

	return l, u, r, c, nil
}

// concatPivots walks blocks in processing order, concatenating each
// block's pivot rows and pivot columns — every row/column becomes a pivot
// of exactly one block, so this reproduces the full permutation.
func concatPivots[T kindset.Numeric](blocks []*front.Block[T]) (r, c []int) {
	for _, b := range blocks {
		if b == nil {
			continue
		}
		r = append(r, b.PivotRows...)
		c = append(c, b.PivotCols...)
	}

	return r, c
}

// invert turns a position->original permutation into original->position,
// the form ccs.CCS.PermuteRowsInplace expects.
func invert(perm []int) []int {
	inv := make([]int, len(perm))
	for pos, orig := range perm {
		inv[orig] = pos
	}

	return inv
}

// buildL writes L's strict-lower entries plus an explicit unit diagonal,
// column by column in pivot-column-position order (block by block, local
// pivot index k). Row indices are left as original row ids; the caller
// permutes them into row-position order afterward.
func buildL[T kindset.Numeric](blocks []*front.Block[T], n int) *ccs.CCS[T] {
	colptr := make([]int, n+1)
	var rowind []int
	var values []T

	one := kindset.One[T]()
	pos := 0
	for _, b := range blocks {
		if b == nil {
			continue
		}
		rowB := len(b.PivotRows)
		nnp := len(b.NonPivotRows)
		l2 := b.LU1.Sub(rowB, 0, nnp, rowB)

		for k := 0; k < rowB; k++ {
			rowind = append(rowind, b.PivotRows[k])
			values = append(values, one)

			for k2 := k + 1; k2 < rowB; k2++ {
				rowind = append(rowind, b.PivotRows[k2])
				values = append(values, b.LU1.At(k2, k))
			}
			for m := 0; m < nnp; m++ {
				rowind = append(rowind, b.NonPivotRows[m])
				values = append(values, l2.At(m, k))
			}

			pos++
			colptr[pos] = len(rowind)
		}
	}

	ccsL, err := ccs.New[T](n, n, colptr, rowind, values)
	if err != nil {
		// buildL only ever emits in-range row indices and a monotone
		// colptr; a failure here means concatPivots' length check above
		// was wrong, a programmer error, not a caller-triggered one.
		panic(err)
	}

	return ccsL
}

// buildUT writes Uᵀ's entries per original U row (this block's own pivot
// row k): the diagonal and upper-triangle part of U1, plus this row's
// slice of Ut2 — both live entirely within this one block, which is why
// Uᵀ (and not U directly) can be built with one local sweep per column,
// no cross-block scatter. Row indices are original column ids; the caller
// permutes them into column-position order before transposing to U.
func buildUT[T kindset.Numeric](blocks []*front.Block[T], n int) *ccs.CCS[T] {
	colptr := make([]int, n+1)
	var rowind []int
	var values []T

	pos := 0
	for _, b := range blocks {
		if b == nil {
			continue
		}
		rowB := len(b.PivotRows)
		ru := len(b.NonPivotCols)

		for k := 0; k < rowB; k++ {
			for j := k; j < rowB; j++ {
				rowind = append(rowind, b.PivotCols[j])
				values = append(values, b.LU1.At(k, j))
			}
			for p := 0; p < ru; p++ {
				rowind = append(rowind, b.NonPivotCols[p])
				values = append(values, b.Ut2.At(p, k))
			}

			pos++
			colptr[pos] = len(rowind)
		}
	}

	ccsUT, err := ccs.New[T](n, n, colptr, rowind, values)
	if err != nil {
		panic(err)
	}

	return ccsUT
}
