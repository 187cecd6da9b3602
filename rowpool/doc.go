// Package rowpool implements the compacting row-pattern arena symbolic
// analysis uses to store growing row patterns without per-append
// reallocation (spec.md §4.2, component C2).
//
// A single []int workspace of size nnz(A) + EANBuffer*n backs every live
// pattern. Appends are bump-pointer; when an append would overflow the
// workspace, Compact moves every still-live pattern to the front, in
// ascending start order, freeing the slack left by patterns that were
// superseded by a merge. This is the only dynamic-allocation discipline
// the symbolic phase needs — mirrors the single-backing-slice ownership
// style of core/adjacency_list.go, generalized from a map of neighbor
// lists to an arena of row patterns addressed by (start, size) pairs.
package rowpool

// EANBuffer is the slack, per column, reserved in the workspace beyond
// nnz(A) so that merged row patterns under construction have room to grow
// before the next compaction (spec.md §4.2).
const EANBuffer = 2
