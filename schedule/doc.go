// Package schedule drives numeric factorization (package numfact) across
// the supercolumn tree symbolic analysis produced (C11, spec.md §4.11): a
// sequential scheduler that walks supercolumns in postorder with one
// shared front.Workspace, and a fork-join scheduler that spawns one task
// per child subtree once that subtree covers enough columns to be worth
// the goroutine, falling back to the sequential walk otherwise.
package schedule
