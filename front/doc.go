// Package front defines the dense frontal matrix and Schur-complement
// contribution block the multifrontal numeric phase assembles, factors, and
// scatters into ancestors (spec.md §3, §4.7).
//
// Storage follows ccs.Dense's column-major, shared-backing-slice
// convention so a block's LU1/L2/Ut2 views can alias one allocation the way
// matrix/dense.go's flat row-major slice backs every view of a Dense.
package front
