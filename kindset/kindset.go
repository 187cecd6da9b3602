package kindset

import "math/cmplx"

// Numeric is the set of scalar kinds the factorization engine runs over:
// real single/double precision and complex single/double precision. All
// four support +, -, *, / natively under Go's generics rules, so Ops only
// needs to supply what the operators cannot: a real-valued magnitude.
type Numeric interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Ops supplies the one operation generic numeric code cannot express with
// Go operators alone: Abs, whose result is always a real magnitude even
// when T is complex. Code that needs it resolves one Ops[T] per call via
// For[T] (ccs.RefKernels.LU does so once per LU call) — no interface{}, no
// reflect, no per-element runtime dispatch.
type Ops[T Numeric] struct {
	Abs func(T) float64
}

// For returns the Ops[T] value for a concrete scalar kind T.
func For[T Numeric]() Ops[T] {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return Ops[T]{Abs: absReal[T]}
	case complex64, complex128:
		return Ops[T]{Abs: absComplex[T]}
	default:
		panic("kindset: unsupported scalar kind")
	}
}

func absReal[T Numeric](v T) float64 {
	f := real(widen(v))
	if f < 0 {
		return -f
	}
	return f
}

func absComplex[T Numeric](v T) float64 {
	return cmplx.Abs(widen(v))
}

// widen lifts any Numeric value to complex128 so Abs shares one
// implementation per real/complex family instead of four.
func widen[T Numeric](v T) complex128 {
	switch x := any(v).(type) {
	case float32:
		return complex(float64(x), 0)
	case float64:
		return complex(x, 0)
	case complex64:
		return complex128(x)
	case complex128:
		return x
	}
	panic("kindset: unsupported scalar kind")
}

// Zero returns the additive identity for T.
func Zero[T Numeric]() T {
	var z T
	return z
}

// One returns the multiplicative identity for T.
func One[T Numeric]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(1)).(T)
	case float64:
		return any(float64(1)).(T)
	case complex64:
		return any(complex64(1)).(T)
	case complex128:
		return any(complex128(1)).(T)
	}
	panic("kindset: unsupported scalar kind")
}
