package mflu

import (
	"github.com/katalvlaran/mflu/ccs"
	"github.com/katalvlaran/mflu/front"
	"github.com/katalvlaran/mflu/kindset"
	"github.com/katalvlaran/mflu/symbolic"
)

// Context bundles everything one NumericFactor call needs: the matrix and
// its transpose, the symbolic analysis it is scheduled against, tuning
// (threshold, scheduler depth/fan-out), and the kernel collaborator. Exactly
// one Context exists per NumericFactor call; it carries no mutable scratch
// state of its own (the per-supercolumn front.Workspace instances are
// schedule's concern, private to Sequential/Parallel's own run), since
// nothing else in this package needs to outlive a single NumericFactor.
type Context[T kindset.Numeric] struct {
	A, AT     *ccs.CCS[T]
	Symbolic  *symbolic.Tree
	Threshold float64
	Kernels   ccs.Kernels[T]

	// MaxDepth bounds schedule.Parallel's fork-join recursion below each
	// root; with 0, Parallel still runs each root on its own goroutine but
	// factors every root's subtree sequentially.
	MaxDepth int
	// Nproc selects the scheduler: <=1 runs Sequential, >1 runs Parallel.
	Nproc int
}

// NewContext builds a Context for a over sym, computing AT once so repeated
// NumericFactor calls over the same matrix (e.g. comparing schedulers) don't
// each re-transpose it.
func NewContext[T kindset.Numeric](a *ccs.CCS[T], sym *symbolic.Tree, threshold float64, kernels ccs.Kernels[T], maxDepth, nproc int) *Context[T] {
	return &Context[T]{
		A:         a,
		AT:        a.Transpose(),
		Symbolic:  sym,
		Threshold: threshold,
		Kernels:   kernels,
		MaxDepth:  maxDepth,
		Nproc:     nproc,
	}
}

// Factor is the result of NumericFactor: the supercolumn tree's block
// sequence, indexed by supercolumn exactly as Context.Symbolic orders them.
// A Factor is only valid for Solve/ToCCS once NumericFactor has returned it
// without error.
type Factor[T kindset.Numeric] struct {
	N      int
	Blocks []*front.Block[T]
}
