package convert

import "errors"

// ErrIncompleteFactor is returned when the block sequence's pivot rows or
// columns do not account for all n rows/columns of the original matrix, so
// no meaningful L/U exists. Only the pivot lists are checked; a block's
// Valid flag is not read.
var ErrIncompleteFactor = errors.New("convert: factor does not cover every row/column")
