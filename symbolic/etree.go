package symbolic

import (
	"github.com/katalvlaran/mflu/ccs"
	"github.com/katalvlaran/mflu/rowpool"
	"github.com/katalvlaran/mflu/unionfind"
)

// eliminationAnalysis builds the per-column elimination tree for a, visiting
// columns in the caller-supplied order, via the row-merge model of spec.md
// §4.3: rows accumulate into equivalence classes keyed by union-find, each
// class's merged row pattern lives in the row pool under the slot of
// whichever pivot step most recently absorbed it.
//
// order must be a permutation of 0..n-1 (a user- or colamd-style preorder);
// eliminationAnalysis does not reorder it, it only discovers the tree that
// order induces.
func eliminationAnalysis(a, aT ccs.Sparsity, order []int) (*columnTree, error) {
	n := a.NumCols()
	if a.NumRows() != n {
		return nil, ErrNotSquare
	}
	if err := checkPermutation(order, n); err != nil {
		return nil, err
	}

	rank := make([]int, n)
	for i, c := range order {
		rank[c] = i
	}

	firstcol := make([]int, n)
	parent := make([]int, n)
	for i := range firstcol {
		firstcol[i] = None
		parent[i] = None
	}
	lsize := make([]int, n)
	usize := make([]int, n)
	rdegs := make([]int, n)
	member := make([]int, n)
	for i := range member {
		member[i] = -1
	}
	clearedCol := make([]bool, n)

	uf := unionfind.New(n)
	pool := rowpool.New(countNNZ(a, n), n, n)

	for i := 0; i < n; i++ {
		col := order[i]
		rows := a.ColumnRows(col)
		if len(rows) == 0 {
			return nil, ErrEmptyColumn
		}

		if err := pool.EnsureCapacity(len(rows)*2+n, liveRoots(parent, n)); err != nil {
			return nil, ErrWorkspace
		}
		pool.StartNew(i)
		curSize := 0
		rdegs[i] = 0

		for _, r := range rows {
			if firstcol[r] == None {
				firstcol[r] = i
				rdegs[i]++
				uf.UnionTo(r, i, i)
				for _, c := range aT.ColumnRows(r) {
					if clearedCol[c] || member[c] == i {
						continue
					}
					member[c] = i
					pool.Push(i, c)
					curSize++
				}
				continue
			}

			rroot := uf.Find(r)
			if rroot == i {
				continue // already folded into this step's class
			}
			for _, c := range pool.Pattern(rroot) {
				if clearedCol[c] || member[c] == i {
					continue
				}
				member[c] = i
				pool.Push(i, c)
				curSize++
			}
			parent[rroot] = i
			rdegs[i] += rdegs[rroot]
			uf.UnionTo(rroot, i, i)
		}

		lsize[i] = rdegs[i]
		usize[i] = curSize
		rdegs[i]--
		clearedCol[col] = true
	}

	return &columnTree{parent: parent, lsize: lsize, usize: usize}, nil
}

func checkPermutation(order []int, n int) error {
	if len(order) != n {
		return ErrBadOrder
	}
	seen := make([]bool, n)
	for _, c := range order {
		if c < 0 || c >= n || seen[c] {
			return ErrBadOrder
		}
		seen[c] = true
	}
	return nil
}

func countNNZ(a ccs.Sparsity, n int) int {
	total := 0
	for j := 0; j < n; j++ {
		total += len(a.ColumnRows(j))
	}
	return total
}

// liveRoots lists every row id still acting as a class root (not yet
// absorbed into a later pivot step's class). Recomputed on demand; this
// package favors a simple O(n) scan here over maintaining a separate live
// set, matching the small-n teaching scale of the rest of the row-merge pass.
func liveRoots(parent []int, n int) []int {
	live := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if parent[i] == None {
			live = append(live, i)
		}
	}
	return live
}
