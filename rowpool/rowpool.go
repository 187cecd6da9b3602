package rowpool

import "sort"

// Pool is the compacting arena. Patterns are addressed by an integer id
// supplied by the caller (symbolic analysis uses the row number, 0..n-1).
type Pool struct {
	data    []int
	free    int
	starts  []int
	sizes   []int
	cleared []bool
}

// New allocates a workspace of capacity nnzA + EANBuffer*n, with
// numPatterns id slots (0..numPatterns-1) all initially empty.
func New(nnzA, n, numPatterns int) *Pool {
	return &Pool{
		data:    make([]int, nnzA+EANBuffer*n),
		starts:  make([]int, numPatterns),
		sizes:   make([]int, numPatterns),
		cleared: make([]bool, numPatterns),
	}
}

// StartNew begins (or restarts) pattern id at the current bump pointer,
// discarding whatever it held before. Only the most recently started
// pattern may be appended to until the next StartNew — the workspace is a
// single shared bump pointer, not per-pattern.
func (p *Pool) StartNew(id int) {
	p.starts[id] = p.free
	p.sizes[id] = 0
}

// EnsureCapacity guarantees at least extra free slots after the bump
// pointer, compacting against the supplied live pattern ids if needed.
// Returns ErrOutOfMemory if compaction cannot free enough space (the
// workspace is undersized for the caller's live set).
func (p *Pool) EnsureCapacity(extra int, liveIDs []int) error {
	if p.free+extra <= len(p.data) {
		return nil
	}
	p.Compact(liveIDs)
	if p.free+extra > len(p.data) {
		return ErrOutOfMemory
	}
	return nil
}

// Push appends v to the end of pattern id's segment, which must be the
// most recently StartNew'd (or most recently Push'd) pattern.
func (p *Pool) Push(id, v int) {
	p.data[p.free] = v
	p.free++
	p.sizes[id]++
}

// Pattern returns the current contents of pattern id.
func (p *Pool) Pattern(id int) []int {
	return p.data[p.starts[id] : p.starts[id]+p.sizes[id]]
}

// Clear marks pattern id as cleared (consumed). Clearing is monotonic and
// idempotent, matching the column_cleared/row_cleared discipline spec.md
// §5 documents as safe under the scheduler's serialization guarantees.
func (p *Pool) Clear(id int) { p.cleared[id] = true }

// Cleared reports whether pattern id has been cleared.
func (p *Pool) Cleared(id int) bool { return p.cleared[id] }

// Compact moves every pattern in liveIDs to the front of the workspace, in
// ascending current-start order, eliminating the slack left by patterns
// that are no longer live. liveIDs is reordered as a side effect (sorted
// by start) but its contents are otherwise unchanged.
func (p *Pool) Compact(liveIDs []int) {
	sort.Slice(liveIDs, func(i, j int) bool { return p.starts[liveIDs[i]] < p.starts[liveIDs[j]] })

	newFree := 0
	for _, id := range liveIDs {
		s, sz := p.starts[id], p.sizes[id]
		if sz == 0 {
			p.starts[id] = newFree
			continue
		}
		if s != newFree {
			copy(p.data[newFree:newFree+sz], p.data[s:s+sz])
		}
		p.starts[id] = newFree
		newFree += sz
	}
	p.free = newFree
}

// Free returns the current bump-pointer position (slots in use).
func (p *Pool) Free() int { return p.free }

// Cap returns the total workspace capacity.
func (p *Pool) Cap() int { return len(p.data) }
