package schedule

import (
	"github.com/katalvlaran/mflu/front"
	"github.com/katalvlaran/mflu/kindset"
)

// Sequential factors every supercolumn of plan.Tree in ascending postorder
// with a single shared front.Workspace (spec.md §4.11 "sequential
// scheduler"). Postorder guarantees every child has a strictly smaller
// index than its parent, so factoring 0..N-1 in order always has a
// supercolumn's children already sitting in plan.Blocks by the time it
// runs.
func Sequential[T kindset.Numeric](plan *Plan[T]) error {
	ws := front.NewWorkspace(plan.Tree.N)
	for s := 0; s < plan.Tree.NumSupercolumns; s++ {
		if err := factorOne(plan, s, ws); err != nil {
			return err
		}
	}

	return nil
}
