// Package numfact implements the per-supercolumn numeric factorization step
// (C10, spec.md §4.10): given an assembled dense front, it factors the
// pivot block with threshold partial pivoting, builds the non-pivot U part,
// and produces the Schur-complement contribution that C9's align-add will
// later scatter into the parent's front.
//
// Factor is the single entry point. It assumes the caller already ran
// focus-from-children and focus-from-A (package assemble) to populate
// block.LU1, in the order spec.md §4.8 requires.
package numfact
