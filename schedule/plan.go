package schedule

import (
	"fmt"

	"github.com/katalvlaran/mflu/assemble"
	"github.com/katalvlaran/mflu/front"
	"github.com/katalvlaran/mflu/kindset"
	"github.com/katalvlaran/mflu/numfact"
	"github.com/katalvlaran/mflu/symbolic"
)

// Plan is the shared, read-only context every scheduler walks: the
// supercolumn tree, the numeric parameters, and the block slots each
// supercolumn's factor result lands in. Blocks is sized
// tree.NumSupercolumns and written at most once per index; a sequential or
// parallel walk never writes the same index from two goroutines, so the
// slice needs no lock (spec.md §5).
type Plan[T kindset.Numeric] struct {
	Tree   *symbolic.Tree
	Params *numfact.Params[T]
	Blocks []*front.Block[T]
}

// NewPlan allocates a Plan's Blocks slice over tree. Params must already
// carry the matrix, its transpose, the pivot threshold, and a kernel set.
func NewPlan[T kindset.Numeric](tree *symbolic.Tree, params *numfact.Params[T]) *Plan[T] {
	return &Plan[T]{
		Tree:   tree,
		Params: params,
		Blocks: make([]*front.Block[T], tree.NumSupercolumns),
	}
}

// isOnlyChild reports whether s is its parent's sole child (spec.md §4.11
// "if s is the only child of its parent").
func isOnlyChild(tree *symbolic.Tree, s int) bool {
	p := tree.Parent[s]
	if p == symbolic.None {
		return false
	}
	return tree.FirstChild[p] == s && tree.NextChild[s] == symbolic.None
}

// childBlocks gathers s's already-factored children from plan.Blocks,
// skipping any child that never allocated a block (l_size 0, spec.md
// §4.11's skip rule: a column with no pivot rows contributes nothing to
// its parent and need not be focused).
func childBlocks[T kindset.Numeric](plan *Plan[T], s int) []*front.Block[T] {
	var children []*front.Block[T]
	for c := plan.Tree.FirstChild[s]; c != symbolic.None; c = plan.Tree.NextChild[c] {
		if b := plan.Blocks[c]; b != nil {
			children = append(children, b)
		}
	}
	return children
}

// factorOne runs the full per-supercolumn pipeline (spec.md §4.8-§4.10)
// for supercolumn s using ws, writing the result into plan.Blocks[s]. ws's
// MapCols may be a task-private buffer; MapRows, ColumnCleared, and
// RowCleared are always the plan-wide shared arrays (spec.md §5).
func factorOne[T kindset.Numeric](plan *Plan[T], s int, ws *front.Workspace) error {
	tree := plan.Tree
	if tree.LSize[s] == 0 {
		return nil
	}

	children := childBlocks(plan, s)
	block := front.AllocateBlock[T](s, tree.CoveredColumns(s), int(tree.LSize[s]), int(tree.USize[s]))
	if !block.Valid {
		return fmt.Errorf("schedule: supercolumn %d: %w", s, front.ErrAllocFailed)
	}

	assemble.BeginSupercolumn(block, ws)
	for _, c := range children {
		assemble.FocusFromChild(block, c, ws)
	}
	assemble.FocusFromA(block, plan.Params.A, ws)

	onlyChild := isOnlyChild(tree, s)
	var parentPivotCols []int
	if onlyChild {
		parentPivotCols = tree.CoveredColumns(tree.Parent[s])
	}

	if err := numfact.Factor(plan.Params, s, block, children, ws, onlyChild, parentPivotCols); err != nil {
		return fmt.Errorf("schedule: supercolumn %d: %w", s, err)
	}

	plan.Blocks[s] = block

	return nil
}
