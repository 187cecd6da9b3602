// Package unionfind implements a disjoint-set forest over 0..n-1, with path
// compression and union by rank. It is the row-merge equivalence-class
// primitive the symbolic analysis (package symbolic) uses to track which
// rows have already merged into a common pattern during elimination-tree
// simulation (spec.md §4.3 "Algorithm: maintain ... per-equivalence-class
// root").
//
// It is the same disjoint-set shape as prim_kruskal.Kruskal's inline
// parent/rank maps, lifted into its own package and re-indexed by int
// instead of string vertex ID, since the symbolic phase works over dense
// 0..n-1 row/column numbers rather than graph vertex identifiers.
package unionfind
