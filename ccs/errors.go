// Package ccs: sentinel error set.
//
// All algorithms in this package MUST return these sentinels (wrapped with
// %w for context where useful) rather than panicking on caller-triggered
// conditions. Tests check them via errors.Is. Panics remain reserved for
// programmer errors in private helpers.
package ccs

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("ccs: invalid shape")

	// ErrNonSquare signals that a square matrix was required but rows != cols.
	ErrNonSquare = errors.New("ccs: matrix is not square")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("ccs: index out of range")

	// ErrMalformed indicates colptr/rowind are not a well-formed CCS
	// structure (non-monotone colptr, row index out of [0,rows)).
	ErrMalformed = errors.New("ccs: malformed compressed-column structure")

	// ErrDimensionMismatch indicates incompatible operand shapes for a
	// dense kernel call (e.g. C += A*B with A.Cols != B.Rows).
	ErrDimensionMismatch = errors.New("ccs: dimension mismatch")

	// ErrSingular is returned by LU when no row meets the pivot threshold
	// for some column; the caller marks the owning block invalid.
	ErrSingular = errors.New("ccs: no pivot meets threshold")
)
