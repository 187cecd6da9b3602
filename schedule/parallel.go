package schedule

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mflu/front"
	"github.com/katalvlaran/mflu/kindset"
	"github.com/katalvlaran/mflu/symbolic"
)

// MinCoverSprsSpawn is the minimum number of columns a subtree must cover
// before Parallel spawns it as its own task rather than folding it into
// the caller's sequential walk (spec.md §4.11 names this knob,
// MIN_COVER_SPRS_SPAWN, without fixing a value). 64 keeps goroutine
// scheduling overhead well under a single supercolumn's typical
// dense-kernel cost for the matrix sizes spec.md §8 exercises; callers
// factoring much larger systems should raise it.
const MinCoverSprsSpawn = 64

// Parallel is the fork-join scheduler (spec.md §4.11): one task per root,
// recursing into children while depth and subtree coverage justify a new
// goroutine, falling back to a sequential walk of the remaining subtree
// otherwise.
type Parallel[T kindset.Numeric] struct {
	Plan     *Plan[T]
	MaxDepth int

	covered  []int // covered[s] = columns in s's subtree, including s
	freeList *ColumnMapFreeList
}

// NewParallel precomputes per-supercolumn subtree column coverage.
func NewParallel[T kindset.Numeric](plan *Plan[T], maxDepth int) *Parallel[T] {
	return &Parallel[T]{
		Plan:     plan,
		MaxDepth: maxDepth,
		covered:  coveredColumnCounts(plan.Tree),
		freeList: NewColumnMapFreeList(plan.Tree.N),
	}
}

// coveredColumnCounts computes counts[s] = tree.Size[s] plus every
// child's count, in one ascending pass: postorder guarantees a child's
// index is always strictly less than its parent's, so counts[s] is
// complete by the time the loop folds it into counts[parent[s]].
func coveredColumnCounts(tree *symbolic.Tree) []int {
	counts := make([]int, tree.NumSupercolumns)
	for s := 0; s < tree.NumSupercolumns; s++ {
		counts[s] += tree.Size[s]
		if p := tree.Parent[s]; p != symbolic.None {
			counts[p] += counts[s]
		}
	}

	return counts
}

// Run factors the whole tree, one errgroup task per root.
func (p *Parallel[T]) Run(ctx context.Context) error {
	base := front.NewWorkspace(p.Plan.Tree.N)
	g, ctx := errgroup.WithContext(ctx)
	for s := p.Plan.Tree.FirstRoot; s != symbolic.None; s = p.Plan.Tree.NextChild[s] {
		s := s
		ws := p.acquireWorkspace(base)
		g.Go(func() error {
			defer p.freeList.Release(ws.MapCols)

			return p.task(ctx, s, 0, ws)
		})
	}

	return g.Wait()
}

// task factors supercolumn s, spawning one sub-task per child when depth
// and coverage justify it, or falling back to a single-goroutine sweep of
// s's whole subtree otherwise.
func (p *Parallel[T]) task(ctx context.Context, s, depth int, ws *front.Workspace) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth >= p.MaxDepth || p.covered[s] < MinCoverSprsSpawn {
		return p.sequentialSubtree(s, ws)
	}

	g, ctx := errgroup.WithContext(ctx)
	for c := p.Plan.Tree.FirstChild[s]; c != symbolic.None; c = p.Plan.Tree.NextChild[c] {
		c := c
		childWS := p.acquireWorkspace(ws)
		g.Go(func() error {
			defer p.freeList.Release(childWS.MapCols)

			return p.task(ctx, c, depth+1, childWS)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return factorOne(p.Plan, s, ws)
}

// sequentialSubtree factors s's entire subtree, including s, on the
// calling goroutine, walking the contiguous postorder index range
// [first_desc_index[s], s] a postordered tree guarantees (spec.md §4.6).
func (p *Parallel[T]) sequentialSubtree(s int, ws *front.Workspace) error {
	tree := p.Plan.Tree
	start := s
	if tree.FirstDescIndex[s] != symbolic.None {
		start = tree.FirstDescIndex[s]
	}
	for idx := start; idx <= s; idx++ {
		if err := factorOne(p.Plan, idx, ws); err != nil {
			return err
		}
	}

	return nil
}

// acquireWorkspace derives a task-private Workspace from base: MapRows,
// ColumnCleared, and RowCleared stay shared across every concurrently
// running task (spec.md §5: siblings never touch the same row or the same
// column-cleared/row-cleared flag, since supercolumns partition both row
// and column space), while MapCols is a private buffer from the free list
// so two siblings' pivot-column bookkeeping never collides.
func (p *Parallel[T]) acquireWorkspace(base *front.Workspace) *front.Workspace {
	return &front.Workspace{
		MapRows:       base.MapRows,
		MapCols:       p.freeList.Acquire(),
		ColumnCleared: base.ColumnCleared,
		RowCleared:    base.RowCleared,
	}
}
