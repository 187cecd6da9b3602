// Package convert packs a factored supercolumn block sequence into plain
// CCS matrices (C13, spec.md §4.13): build row/column permutations from the
// concatenated pivot lists, then write L and Uᵀ directly from each block's
// dense sub-views and permute/transpose into final CCS form. Pure packing,
// not the interesting part — the arithmetic already happened in numfact.
package convert
