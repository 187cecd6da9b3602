// Package ccs defines the external collaborators the multifrontal core
// consumes but does not own: the compressed-column sparse container and
// the dense BLAS-like kernels the numeric factorization calls into.
//
// Naming follows the CSC convention used by gonum's sparse ecosystem
// (james-bowman/sparse, edaniels/sparse: Indptr/Ind/Data) translated to the
// classic sparse-LU vocabulary (Colptr/Rowind/Values) that spec.md uses.
//
// The Sparsity and Kernels[T] interfaces and the CCS[T] container's methods
// are the collaborator surface: mflu's own packages (symbolic, front,
// assemble, numfact, solve, convert) only ever call through them. RefKernels[T] is a correctness-first reference
// implementation of the dense kernels, suitable for tests and for small
// problems; a production build substitutes a BLAS/LAPACK binding behind
// the same Kernels[T] interface without touching the core.
package ccs
