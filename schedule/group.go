package schedule

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Group adapts golang.org/x/sync/errgroup to assemble.Spawner, so
// assemble.ParallelAlignAddRectangle can hand its rectangle halves to
// goroutines. Parallel's own subtree fan-out does not go through Group; it
// runs on errgroup.Group values of its own.
//
// Sync is a conservative barrier: it waits for every task ever Spawned on
// this Group, not only those spawned since the matching call, because a
// single errgroup.Group's WaitGroup counter is shared across the whole
// recursion a caller like ParallelAlignAddRectangle drives through one
// Group value. That is stricter than the LIFO-scoped wait spec.md §4.11
// describes, never weaker: an extra task finishing before Sync returns can
// only add a wait, never drop one a caller depended on.
type Group struct {
	g *errgroup.Group
}

// NewGroup returns a Group bound to ctx, and the derived context every
// spawned task should observe. Spawn's func() signature carries no error
// return of its own; tasks that can fail report through the result they
// write (plan.Blocks, or an out-of-band error slot the caller owns), not
// through this context.
func NewGroup(ctx context.Context) (*Group, context.Context) {
	g, gctx := errgroup.WithContext(ctx)

	return &Group{g: g}, gctx
}

// Spawn runs fn on the errgroup's pool.
func (s *Group) Spawn(fn func()) {
	s.g.Go(func() error {
		fn()

		return nil
	})
}

// Sync blocks until every task spawned on this Group has returned.
func (s *Group) Sync() {
	_ = s.g.Wait()
}
