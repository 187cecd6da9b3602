package rowpool

import "errors"

// ErrOutOfMemory is returned when a requested capacity cannot be satisfied
// even after compaction — the workspace itself is undersized for the live
// set, which should not happen for a correctly sized pool (nnz(A)+EANBuffer*n)
// but is surfaced rather than panicking, per spec.md §7's out-of-memory
// error kind.
var ErrOutOfMemory = errors.New("rowpool: workspace exhausted")
