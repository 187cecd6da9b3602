// Package mflu implements a multifrontal sparse unsymmetric LU factorization
// engine: supernodal (supercolumn) blocking with threshold partial pivoting.
//
// Given a square sparse matrix A in compressed-column form and a caller
// preorder, SymbolicFactor computes a column elimination tree, its
// supercolumn (fundamental supernode) blocking, and fill upper bounds.
// NumericFactor then walks the supercolumn tree — sequentially or with a
// bounded fork-join scheduler — assembling one dense frontal matrix per
// supercolumn, factoring it with threshold partial pivoting, and passing a
// Schur-complement contribution up to its ancestors. SolveOne/SolveMany
// apply the resulting blocked factor to right-hand sides; ToCCS materializes
// L and U as compressed-column matrices.
//
// Subpackages, leaves first:
//
//	kindset/  — generic scalar trait (float32|float64|complex64|complex128)
//	ccs/      — sparse CCS container + dense-kernel collaborator interfaces
//	unionfind/ — disjoint-set forest with path compression
//	rowpool/  — compacting arena for row patterns
//	symbolic/ — elimination tree, postorder, supercolumn detection & relaxation
//	front/    — frontal/contribution block definitions
//	assemble/ — focus (column/row gather) and align-add (Schur scatter)
//	numfact/  — per-supercolumn dense factorization
//	schedule/ — sequential and parallel tree schedulers
//	solve/    — blocked forward/back substitution
//	convert/  — blocked factor to CCS L, U
//	fixtures/ — deterministic test-matrix builders
//
// This package does not own any arithmetic kernel: BLAS-like dense
// operations and the column-ordering source are external collaborators,
// consumed only through the interfaces in ccs.
package mflu
