package ccs

import "github.com/katalvlaran/mflu/kindset"

// Sparsity is the structural view of a CCS[T] — row indices only, no scalar
// values. Package symbolic imports only this interface, since the
// elimination-tree / supercolumn analysis is purely structural and must not
// be monomorphized per scalar kind. Every *CCS[T] satisfies it.
type Sparsity interface {
	NumRows() int
	NumCols() int
	ColumnRows(j int) []int
}

// CCS is a square or rectangular sparse matrix in compressed-column storage.
// For column j, the row indices and values of its nonzeros live in
// rowind[colptr[j]:colptr[j+1]] and values[colptr[j]:colptr[j+1]]; within a
// column, rows need not be sorted.
//
// CCS is the external collaborator spec.md describes as "out of scope": the
// multifrontal core only ever reads through the accessor methods below, it
// never mutates a CCS's arithmetic in place.
type CCS[T kindset.Numeric] struct {
	rows, cols int
	colptr     []int // length cols+1
	rowind     []int // length colptr[cols]
	values     []T   // length colptr[cols]
}

// New validates and wraps a compressed-column structure. It does not copy
// the backing slices: callers that intend to keep mutating them afterward
// must copy first.
func New[T kindset.Numeric](rows, cols int, colptr, rowind []int, values []T) (*CCS[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if len(colptr) != cols+1 {
		return nil, ErrMalformed
	}
	nnz := colptr[cols]
	if nnz < 0 || len(rowind) != nnz || len(values) != nnz {
		return nil, ErrMalformed
	}
	for j := 0; j < cols; j++ {
		if colptr[j+1] < colptr[j] {
			return nil, ErrMalformed
		}
	}
	for _, r := range rowind {
		if r < 0 || r >= rows {
			return nil, ErrMalformed
		}
	}

	return &CCS[T]{rows: rows, cols: cols, colptr: colptr, rowind: rowind, values: values}, nil
}

// NumRows returns the row count.
func (m *CCS[T]) NumRows() int { return m.rows }

// NumCols returns the column count.
func (m *CCS[T]) NumCols() int { return m.cols }

// ColumnRows returns the row indices of nonzeros in column j.
func (m *CCS[T]) ColumnRows(j int) []int {
	s, e := m.colptr[j], m.colptr[j+1]
	return m.rowind[s:e]
}

// Column returns the row indices and values of nonzeros in column j.
func (m *CCS[T]) Column(j int) ([]int, []T) {
	s, e := m.colptr[j], m.colptr[j+1]
	return m.rowind[s:e], m.values[s:e]
}

// Colptr exposes the raw column-pointer array (read-only use expected).
func (m *CCS[T]) Colptr() []int { return m.colptr }

// NNZ returns the total number of stored nonzeros.
func (m *CCS[T]) NNZ() int { return m.colptr[m.cols] }

// Transpose builds Aᵀ. This is the one construction the symbolic phase
// needs up front (spec.md §3) to enumerate nonzeros by row in O(nnz); it is
// computed once per factorization, never incrementally.
func (m *CCS[T]) Transpose() *CCS[T] {
	rows, cols := m.rows, m.cols
	tColptr := make([]int, rows+1)
	for _, r := range m.rowind {
		tColptr[r+1]++
	}
	for i := 0; i < rows; i++ {
		tColptr[i+1] += tColptr[i]
	}

	nnz := len(m.rowind)
	tRowind := make([]int, nnz)
	tValues := make([]T, nnz)
	cursor := append([]int(nil), tColptr[:rows]...)
	for j := 0; j < cols; j++ {
		rs, vs := m.Column(j)
		for k, r := range rs {
			pos := cursor[r]
			tRowind[pos] = j
			tValues[pos] = vs[k]
			cursor[r]++
		}
	}

	return &CCS[T]{rows: cols, cols: rows, colptr: tColptr, rowind: tRowind, values: tValues}
}

// PermuteRowsInplace applies row permutation perm (perm[oldRow] = newRow)
// to every stored row index, in place.
func (m *CCS[T]) PermuteRowsInplace(perm []int) {
	for i, r := range m.rowind {
		m.rowind[i] = perm[r]
	}
}
