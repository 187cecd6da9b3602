// Package solve implements blocked forward/back substitution over an
// already-factored supercolumn block sequence (C12, spec.md §4.12):
// Ly = Pb by a forward sweep over blocks in factorization order, then
// Uz = y, x = Qz by a reverse sweep. Both passes reuse exactly the dense
// sub-views (L1/U1, L2, Ut2) package numfact produced, through the same
// Kernels[T] collaborator interface.
package solve
