// Package symbolic computes the supercolumn elimination tree a multifrontal
// factorization walks: column elimination-tree construction via the
// row-merge model (component C3), an iterative postorder with descendant
// counts (C4), fundamental-supernode detection with overfill-bounded
// amalgamation and leaf relaxation (C5), and the final range/coverage
// assembly (C6) — spec.md §4.3-§4.6.
//
// The traversal discipline follows dfs.DFS's iterative-stack style rather
// than native recursion: elimination trees built from triangular or
// arrow-shaped matrices can be arbitrarily skewed, and a recursive postorder
// would risk stack exhaustion on those inputs (spec.md §9 "Deep recursion").
//
// Analyze is the package's single entry point, mirroring dfs.DFS's "one
// orchestrator, options resolved up front" shape.
package symbolic
