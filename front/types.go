package front

import (
	"github.com/katalvlaran/mflu/ccs"
	"github.com/katalvlaran/mflu/kindset"
)

// Contribution is the Schur-complement block a factored supercolumn hands
// to its ancestors (spec.md §3 "Contribution (Schur) block"). Rows/Cols
// hold the original matrix row/column index stored at each physical slot;
// RowLoc/ColLoc are the inverse maps (original index -> physical slot,
// None if absent), sized to the matrix order so align-add's scatter loops
// can test membership in O(1) exactly the way map_rows/map_cols do in C8.
type Contribution[T kindset.Numeric] struct {
	Values []T
	Ld     int
	M, N   int // active row/col counts; shrink as ancestors consume pieces

	Rows, Cols     []int
	RowLoc, ColLoc []int

	LMember, UMember bool
}

// NewContribution allocates an m0 x n0 contribution block over a matrix of
// order n, with rows/cols initialized to the identity mapping.
func NewContribution[T kindset.Numeric](rows, cols []int, n int) *Contribution[T] {
	m0, n0 := len(rows), len(cols)
	c := &Contribution[T]{
		Values: make([]T, m0*n0),
		Ld:     m0,
		M:      m0,
		N:      n0,
		Rows:   append([]int(nil), rows...),
		Cols:   append([]int(nil), cols...),
		RowLoc: make([]int, n),
		ColLoc: make([]int, n),
	}
	for i := range c.RowLoc {
		c.RowLoc[i] = None
	}
	for i := range c.ColLoc {
		c.ColLoc[i] = None
	}
	for k, r := range rows {
		c.RowLoc[r] = k
	}
	for k, cc := range cols {
		c.ColLoc[cc] = k
	}
	return c
}

// None marks "not present" in RowLoc/ColLoc, matching the map_rows/map_cols
// convention spec.md §4.8 describes.
const None = -1

// Dense returns the live m x n view backing this contribution.
func (c *Contribution[T]) Dense() ccs.Dense[T] {
	return ccs.Dense[T]{Values: c.Values, Ld: c.Ld, Rows: c.M, Cols: c.N}
}

// At returns the value at physical position (i,j), a thin convenience over
// Dense() for the common single-element case.
func (c *Contribution[T]) At(i, j int) T { return c.Values[j*c.Ld+i] }

// Set assigns the value at physical position (i,j).
func (c *Contribution[T]) Set(i, j int, v T) { c.Values[j*c.Ld+i] = v }

// Empty reports whether every row or every column has been consumed.
func (c *Contribution[T]) Empty() bool { return c.M == 0 || c.N == 0 }

// RemoveRow drops physical row k by swapping in the last active row
// (spec.md §4.8 "shrink the contrib, swap-with-last, decrement n").
func (c *Contribution[T]) RemoveRow(k int) {
	last := c.M - 1
	removed := c.Rows[k]
	if k != last {
		for col := 0; col < c.N; col++ {
			c.Values[col*c.Ld+k] = c.Values[col*c.Ld+last]
		}
		c.Rows[k] = c.Rows[last]
		c.RowLoc[c.Rows[k]] = k
	}
	c.RowLoc[removed] = None
	c.M = last
}

// RemoveCol drops physical column k by swapping in the last active column.
func (c *Contribution[T]) RemoveCol(k int) {
	last := c.N - 1
	removed := c.Cols[k]
	if k != last {
		copy(c.Values[k*c.Ld:k*c.Ld+c.M], c.Values[last*c.Ld:last*c.Ld+c.M])
		c.Cols[k] = c.Cols[last]
		c.ColLoc[c.Cols[k]] = k
	}
	c.ColLoc[removed] = None
	c.N = last
}

// Block is the factor block for one supercolumn (spec.md §3 "Factor
// block"). LU1 stores L1 below the diagonal and U1 on and above it; Ut2 is
// stored transposed (physical rows = non-pivot columns, physical cols =
// pivot rows), matching the "row-major (pivot_rows x non_pivot_cols),
// stored as its transpose" layout the spec calls out so UnitLowerRightTriSolve
// can operate on it directly as a left-multiplication view.
type Block[T kindset.Numeric] struct {
	Supercolumn int

	PivotCols    []int
	PivotRows    []int
	NonPivotRows []int
	NonPivotCols []int

	LU1 ccs.Dense[T]
	L2  ccs.Dense[T]
	Ut2 ccs.Dense[T]

	Contrib *Contribution[T]
	Valid   bool

	// NumColsInParent records, after the only-child column reorder (spec.md
	// §4.10 step 5), how many of NonPivotCols' leading entries are shared
	// with the parent supercolumn.
	NumColsInParent int

	// ColumnsCleared/RowsCleared are factorization diagnostics, not part of
	// the reference algorithm: a running count of how many of this block's
	// pivot columns/rows were satisfied from A directly (as opposed to from
	// a descendant's contribution), surfaced on Factor for introspection.
	ColumnsCleared int
	RowsCleared    int
}
