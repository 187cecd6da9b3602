package ccs

import "github.com/katalvlaran/mflu/kindset"

// Dense is a column-major dense matrix view shared by the kernel calls:
// Values[j*Ld+i] is element (i,j). Ld (leading dimension) may exceed Rows
// when the view is a slice of a larger allocation — this is how numfact
// shares one backing buffer across a front's pivotal and non-pivotal parts
// without copying.
type Dense[T kindset.Numeric] struct {
	Values     []T
	Ld         int
	Rows, Cols int
}

// At returns element (i,j).
func (d Dense[T]) At(i, j int) T { return d.Values[j*d.Ld+i] }

// Set assigns element (i,j).
func (d Dense[T]) Set(i, j int, v T) { d.Values[j*d.Ld+i] = v }

// Sub returns the sub-view starting at (r0,c0) with the given extent,
// sharing the same backing slice and leading dimension.
func (d Dense[T]) Sub(r0, c0, rows, cols int) Dense[T] {
	return Dense[T]{Values: d.Values[c0*d.Ld+r0:], Ld: d.Ld, Rows: rows, Cols: cols}
}

// Kernels is the set of dense BLAS-like operations the numeric
// factorization (C10) and blocked solve (C12) consume as external
// collaborators (spec.md §6). Every method may itself be internally
// parallel; from the scheduler's point of view each call is one opaque
// task (spec.md §5).
type Kernels[T kindset.Numeric] interface {
	// LU factors a (rows x cols) dense block in place with threshold
	// partial pivoting: for each pivot column, a row with
	// |a| >= threshold*max(|a|) in that column is selected, ties (when
	// threshold < 1) broken toward the row with the smaller degree
	// estimate. pivots[k] receives the original row index chosen for
	// pivot step k. Returns ErrSingular if column k has no entry meeting
	// the threshold (the caller marks the owning block invalid).
	LU(a Dense[T], threshold float64, degrees []float64, pivots []int) error

	// UnitLowerLeftTriSolve solves L*X = B in place (X overwrites B),
	// where L is the unit-lower-triangular leading Rows(l) x Rows(l)
	// block of l and B has the same row count.
	UnitLowerLeftTriSolve(l, b Dense[T])

	// UpperLeftTriSolve solves U*X = B in place (X overwrites B), U the
	// upper-triangular leading block of u. Returns ErrSingular on a zero
	// diagonal entry.
	UpperLeftTriSolve(u, b Dense[T]) error

	// UnitLowerRightTriSolve solves X*Lᵀ = B in place, L unit lower
	// triangular, used to turn Ut2 into the true U non-pivot block: Ut2
	// holds U2ᵀ, so U2 <- L1^-1 * U2 is expressed as this call on Ut2's
	// transpose storage.
	UnitLowerRightTriSolve(l, b Dense[T])

	// CaddMAB computes c -= a*b.
	CaddMAB(c, a, b Dense[T]) error
	// CaddMABT computes c -= a*bᵀ.
	CaddMABT(c, a, b Dense[T]) error
	// CaddMATB computes c -= aᵀ*b.
	CaddMATB(c, a, b Dense[T]) error

	// SwapLines exchanges rows i and j of a in place.
	SwapLines(a Dense[T], i, j int)
}
