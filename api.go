package mflu

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mflu/ccs"
	"github.com/katalvlaran/mflu/convert"
	"github.com/katalvlaran/mflu/kindset"
	"github.com/katalvlaran/mflu/numfact"
	"github.com/katalvlaran/mflu/schedule"
	"github.com/katalvlaran/mflu/solve"
	"github.com/katalvlaran/mflu/symbolic"
)

// SymbolicFactor runs column elimination-tree analysis and supercolumn
// blocking, given the caller's column order (spec.md §6 symbolic_factor).
// The structural analysis does not depend on A's scalar kind, but taking
// *ccs.CCS[T] directly (rather than the bare ccs.Sparsity interface
// symbolic.Analyze consumes) lets SymbolicFactor build aT itself instead of
// asking every caller to. The result is reusable across any number of
// NumericFactor calls over matrices sharing this pattern, including at a
// different scalar kind.
func SymbolicFactor[T kindset.Numeric](a *ccs.CCS[T], columnOrder []int, opts symbolic.Options) (*symbolic.Tree, error) {
	tree, err := symbolic.Analyze(a, a.Transpose(), columnOrder, opts)
	if err != nil {
		return nil, fmt.Errorf("mflu: symbolic factor: %w", err)
	}

	return tree, nil
}

// NumericFactor walks ctx.Symbolic's supercolumn tree assembling and
// factoring one dense front per supercolumn (spec.md §6 numeric_factor).
// ctx.Nproc<=1 runs the sequential scheduler; ctx.Nproc>1 runs the fork-join
// scheduler bounded by ctx.MaxDepth. Returns ErrInvalidFactor (wrapped) if
// threshold partial pivoting could not find a pivot for some supercolumn.
func NumericFactor[T kindset.Numeric](ctx *Context[T]) (*Factor[T], error) {
	params := &numfact.Params[T]{N: ctx.Symbolic.N, A: ctx.A, AT: ctx.AT, Threshold: ctx.Threshold, Kernels: ctx.Kernels}
	plan := schedule.NewPlan(ctx.Symbolic, params)

	var err error
	if ctx.Nproc <= 1 {
		err = schedule.Sequential(plan)
	} else {
		// Spawner wires numfact's align-add onto a schedule.Group, so a large
		// Schur scatter can itself subdivide into goroutines alongside
		// schedule.Parallel's subtree fan-out (spec.md §4.9, §4.11).
		// ParallelAlignAddRectangle syncs its own spawned
		// tasks before returning, so no separate Sync call is needed here.
		g, gctx := schedule.NewGroup(context.Background())
		params.Spawner = g
		p := schedule.NewParallel(plan, ctx.MaxDepth)
		err = p.Run(gctx)
	}
	if err != nil {
		return nil, fmt.Errorf("mflu: numeric factor: %w: %w", ErrInvalidFactor, err)
	}

	return &Factor[T]{N: ctx.Symbolic.N, Blocks: plan.Blocks}, nil
}

// SolveOne solves A*x = b for a single right-hand side (spec.md §6
// solve_one), applying f's blocked forward/back substitution.
func SolveOne[T kindset.Numeric](kernels ccs.Kernels[T], f *Factor[T], x, b []T) error {
	return solve.One(kernels, f.Blocks, f.N, x, b)
}

// SolveMany solves A*X = B for nrhs right-hand sides stacked column-major
// (spec.md §6 solve_many).
func SolveMany[T kindset.Numeric](kernels ccs.Kernels[T], f *Factor[T], nrhs int, x, b []T, ldX, ldB int) error {
	return solve.Many(kernels, f.Blocks, f.N, nrhs, x, b, ldX, ldB)
}

// ToCCS materializes f's L and U factors as compressed-column matrices,
// plus the row/column permutations relating them to the original matrix
// (spec.md §6 to_ccs).
func ToCCS[T kindset.Numeric](f *Factor[T]) (l, u *ccs.CCS[T], r, c []int, err error) {
	return convert.ToCCS(f.Blocks, f.N)
}
