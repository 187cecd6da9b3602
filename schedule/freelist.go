package schedule

import (
	"sync"

	"github.com/katalvlaran/mflu/front"
)

// ColumnMapFreeList hands out private map_cols buffers to concurrently
// running tasks and recycles them once a task's subtree finishes (spec.md
// §4.11: "each task acquires a private map_cols array... released back to
// the free list still all -1"). Buffers come back all -1 because every
// BeginSupercolumn/EndSupercolumn pair in factorOne clears exactly the
// entries it set, so by the time a task's last supercolumn finishes its
// borrowed buffer is restored to the all-absent state the contract
// requires; ColumnMapFreeList itself does no clearing.
//
// This is the linked-list-style free list spec.md §4.11 allows as an
// alternative to a preallocated (n+1) x nproc slab: buffers are created on
// demand and kept in a simple stack, which avoids committing to a worker
// count up front.
type ColumnMapFreeList struct {
	n    int
	mu   sync.Mutex
	free [][]int
}

// NewColumnMapFreeList returns an empty free list sized for a matrix of
// order n; buffers are allocated lazily on first Acquire.
func NewColumnMapFreeList(n int) *ColumnMapFreeList {
	return &ColumnMapFreeList{n: n}
}

// Acquire returns a buffer set to all front.None, either recycled or
// freshly allocated.
func (f *ColumnMapFreeList) Acquire() []int {
	f.mu.Lock()
	if len(f.free) > 0 {
		buf := f.free[len(f.free)-1]
		f.free = f.free[:len(f.free)-1]
		f.mu.Unlock()

		return buf
	}
	f.mu.Unlock()

	buf := make([]int, f.n)
	for i := range buf {
		buf[i] = front.None
	}

	return buf
}

// Release returns buf to the pool. Callers must only release a buffer
// already restored to all-None by the supercolumns that borrowed it.
func (f *ColumnMapFreeList) Release(buf []int) {
	f.mu.Lock()
	f.free = append(f.free, buf)
	f.mu.Unlock()
}
