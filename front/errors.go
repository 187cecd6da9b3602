package front

import "errors"

// ErrAllocFailed reports a factor block AllocateBlock could not shape:
// AllocateBlock itself returns such a block with Valid set to false, and
// the scheduler turns that into this error (wrapped), which aborts the
// whole factorization.
var ErrAllocFailed = errors.New("front: factor block allocation failed")
