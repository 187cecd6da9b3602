package symbolic

import "errors"

var (
	// ErrEmptyColumn is returned when a structural column has no nonzeros at
	// all, including no diagonal entry — spec.md's "assertion failure"
	// language strengthened into a checked sentinel per SPEC_FULL.md, since a
	// column with an empty pattern can never receive a pivot.
	ErrEmptyColumn = errors.New("symbolic: column has empty pattern")

	// ErrNotSquare is returned when the sparsity pattern is not square; the
	// elimination-tree model assumes n pivot steps over n rows and n columns.
	ErrNotSquare = errors.New("symbolic: matrix must be square")

	// ErrBadOrder is returned when the caller's column order is not a valid
	// permutation of 0..n-1.
	ErrBadOrder = errors.New("symbolic: column order is not a permutation")

	// ErrWorkspace is returned when the row pool cannot be grown to hold the
	// row-merge patterns for the given input (see rowpool.ErrOutOfMemory).
	ErrWorkspace = errors.New("symbolic: row pattern workspace exhausted")
)
