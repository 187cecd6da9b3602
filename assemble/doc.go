// Package assemble gathers a supercolumn's dense frontal matrix from the
// original matrix A and from its children's Schur contribution blocks
// (column/row focus, C8), and scatters a freshly built contribution into an
// ancestor's front (align-add, C9) — spec.md §4.8-§4.9.
//
// The focus routines follow the critical ordering rule verbatim:
// focus-from-children, then focus-from-A, then (after the caller's dense
// LU step) focus-rows. Callers are responsible for running them in that
// order and for running the dense factorization step between FocusFromA
// and FocusRows; this package does not itself own that sequencing.
package assemble
