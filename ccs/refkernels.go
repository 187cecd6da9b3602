package ccs

import "github.com/katalvlaran/mflu/kindset"

// RefKernels is a correctness-first, non-BLAS implementation of Kernels[T].
// It generalizes the teacher's Doolittle LU (matrix/ops/lu.go) to the
// rectangular, threshold-partial-pivoted case the multifrontal core needs:
// frontal blocks are (rows x supercolumn-size), rows usually exceeding
// columns, and a zero pivot must be replaced by row exchange rather than
// aborting outright. A production build swaps this for a BLAS/LAPACK
// binding satisfying the same Kernels[T] interface.
type RefKernels[T kindset.Numeric] struct{}

// LU implements Kernels[T].LU via rectangular Gaussian elimination with
// threshold partial pivoting (spec.md §4.10 step 3). pivots must have
// length a.Rows and start as the identity permutation (pivots[i] == i's
// original row); it is permuted alongside the matrix rows so callers can
// recover which original row became which pivot.
func (RefKernels[T]) LU(a Dense[T], threshold float64, degrees []float64, pivots []int) error {
	ops := kindset.For[T]()
	steps := a.Cols
	if a.Rows < steps {
		steps = a.Rows
	}

	for k := 0; k < steps; k++ {
		maxAbs, maxRow := -1.0, k
		for i := k; i < a.Rows; i++ {
			v := ops.Abs(a.At(i, k))
			if v > maxAbs {
				maxAbs, maxRow = v, i
			}
		}
		if maxAbs <= 0 {
			return ErrSingular
		}

		chosen := maxRow
		if threshold < 1 && degrees != nil {
			bestDeg := degrees[maxRow]
			for i := k; i < a.Rows; i++ {
				v := ops.Abs(a.At(i, k))
				if v >= threshold*maxAbs && degrees[i] < bestDeg {
					bestDeg, chosen = degrees[i], i
				}
			}
		}

		if chosen != k {
			RefKernels[T]{}.SwapLines(a, k, chosen)
			pivots[k], pivots[chosen] = pivots[chosen], pivots[k]
			if degrees != nil {
				degrees[k], degrees[chosen] = degrees[chosen], degrees[k]
			}
		}

		pivotVal := a.At(k, k)
		for i := k + 1; i < a.Rows; i++ {
			factor := a.At(i, k) / pivotVal
			a.Set(i, k, factor)
			for j := k + 1; j < a.Cols; j++ {
				a.Set(i, j, a.At(i, j)-factor*a.At(k, j))
			}
		}
	}

	return nil
}

// UnitLowerLeftTriSolve solves L*X=B in place, L unit lower triangular.
func (RefKernels[T]) UnitLowerLeftTriSolve(l, b Dense[T]) {
	n := l.Rows
	for j := 0; j < b.Cols; j++ {
		for i := 0; i < n; i++ {
			sum := b.At(i, j)
			for k := 0; k < i; k++ {
				sum -= l.At(i, k) * b.At(k, j)
			}
			b.Set(i, j, sum)
		}
	}
}

// UpperLeftTriSolve solves U*X=B in place via back substitution.
func (RefKernels[T]) UpperLeftTriSolve(u, b Dense[T]) error {
	zero := kindset.Zero[T]()
	n := u.Rows
	for j := 0; j < b.Cols; j++ {
		for i := n - 1; i >= 0; i-- {
			sum := b.At(i, j)
			for k := i + 1; k < n; k++ {
				sum -= u.At(i, k) * b.At(k, j)
			}
			diag := u.At(i, i)
			if diag == zero {
				return ErrSingular
			}
			b.Set(i, j, sum/diag)
		}
	}

	return nil
}

// UnitLowerRightTriSolve solves X*Lᵀ=B in place, L unit lower triangular,
// B's column count equal to L's row count (right-multiplication forward
// substitution, column index ascending).
func (RefKernels[T]) UnitLowerRightTriSolve(l, b Dense[T]) {
	n := l.Rows
	for i := 0; i < b.Rows; i++ {
		for j := 0; j < n; j++ {
			sum := b.At(i, j)
			for k := 0; k < j; k++ {
				sum -= b.At(i, k) * l.At(j, k)
			}
			b.Set(i, j, sum)
		}
	}
}

// CaddMAB computes c -= a*b.
func (RefKernels[T]) CaddMAB(c, a, b Dense[T]) error {
	if a.Cols != b.Rows || c.Rows != a.Rows || c.Cols != b.Cols {
		return ErrDimensionMismatch
	}
	for i := 0; i < c.Rows; i++ {
		for j := 0; j < c.Cols; j++ {
			sum := c.At(i, j)
			for k := 0; k < a.Cols; k++ {
				sum -= a.At(i, k) * b.At(k, j)
			}
			c.Set(i, j, sum)
		}
	}

	return nil
}

// CaddMABT computes c -= a*bᵀ.
func (RefKernels[T]) CaddMABT(c, a, b Dense[T]) error {
	if a.Cols != b.Cols || c.Rows != a.Rows || c.Cols != b.Rows {
		return ErrDimensionMismatch
	}
	for i := 0; i < c.Rows; i++ {
		for j := 0; j < c.Cols; j++ {
			sum := c.At(i, j)
			for k := 0; k < a.Cols; k++ {
				sum -= a.At(i, k) * b.At(j, k)
			}
			c.Set(i, j, sum)
		}
	}

	return nil
}

// CaddMATB computes c -= aᵀ*b.
func (RefKernels[T]) CaddMATB(c, a, b Dense[T]) error {
	if a.Rows != b.Rows || c.Rows != a.Cols || c.Cols != b.Cols {
		return ErrDimensionMismatch
	}
	for i := 0; i < c.Rows; i++ {
		for j := 0; j < c.Cols; j++ {
			sum := c.At(i, j)
			for k := 0; k < a.Rows; k++ {
				sum -= a.At(k, i) * b.At(k, j)
			}
			c.Set(i, j, sum)
		}
	}

	return nil
}

// SwapLines exchanges rows i and j of a in place.
func (RefKernels[T]) SwapLines(a Dense[T], i, j int) {
	if i == j {
		return
	}
	for c := 0; c < a.Cols; c++ {
		a.Values[c*a.Ld+i], a.Values[c*a.Ld+j] = a.Values[c*a.Ld+j], a.Values[c*a.Ld+i]
	}
}
