// Package fixtures builds the literal test matrices spec.md §8's
// end-to-end scenarios name: a diagonal matrix, a dense 2x2 forcing a
// pivot swap, a tridiagonal system, an arrow matrix, a nested-dissection
// four-way separator matrix, and a singular (zero-column) matrix. Each
// builder returns a *ccs.CCS[float64] and the column order the scenario
// specifies, deterministically and without any random source — repurposed
// from builder/'s functional topology constructors, swapped from graph
// topologies to the sparse matrices this module factors.
package fixtures
