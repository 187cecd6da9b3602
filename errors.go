package mflu

import "errors"

// ErrInvalidFactor is returned by NumericFactor when the dense LU kernel
// could not find a pivot meeting the threshold for some supercolumn
// (spec.md §4.10 "failure modes"): the block is marked invalid and numeric
// factorization is abandoned. SymbolicFactor's own malformed-column_order
// case surfaces directly as symbolic.ErrBadOrder (wrapped), not a separate
// root-level sentinel.
var ErrInvalidFactor = errors.New("mflu: no valid factor (a block failed threshold pivoting)")
