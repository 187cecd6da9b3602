// Package kindset provides the scalar-kind trait the rest of mflu
// monomorphizes over, instead of dispatching per-element at runtime.
//
// The reference BLAS convention (S/D/C/Z prefixes for
// single/double/complex-single/complex-double, see gonum's blas package)
// dispatches by generating one function per prefix. Go generics let us keep
// a single generic implementation: add, sub, mul and div are Go operators,
// Zero/One are plain functions, and the one remaining scalar behavior, a
// real-valued abs, is selected once per call via Ops[T], exactly the numeric
// policy a caller picks once and reuses — mirrors the "numeric policy is
// orthogonal and explicit" design note from the matrix package this module
// grew out of.
package kindset
