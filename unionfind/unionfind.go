package unionfind

// Forest is a disjoint-set forest over the elements 0..n-1.
//
// Find uses path compression (iterative, not recursive — elimination trees
// built from triangular or arrow-shaped matrices can be deeply skewed, so a
// recursive Find risks stack blow-up, per spec.md §9 "Deep recursion").
// Union merges by rank; it is not required by spec.md's algorithm (any
// merge strategy keeps the row-pattern math correct) but keeps Find
// near-constant in the worst case, exactly as in prim_kruskal.Kruskal.
type Forest struct {
	parent []int
	rank   []int
}

// New creates a forest of n singleton sets.
func New(n int) *Forest {
	f := &Forest{parent: make([]int, n), rank: make([]int, n)}
	for i := range f.parent {
		f.parent[i] = i
	}
	return f
}

// Find returns the representative of x's set, compressing the path from x
// to the root as it walks up.
func (f *Forest) Find(x int) int {
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[x] != root {
		f.parent[x], x = root, f.parent[x]
	}
	return root
}

// Union merges the sets containing x and y and returns the representative
// of the merged set. If x and y are already in the same set, it returns
// that set's representative without modifying the forest.
func (f *Forest) Union(x, y int) int {
	rx, ry := f.Find(x), f.Find(y)
	if rx == ry {
		return rx
	}
	switch {
	case f.rank[rx] < f.rank[ry]:
		f.parent[rx] = ry
		return ry
	case f.rank[rx] > f.rank[ry]:
		f.parent[ry] = rx
		return rx
	default:
		f.parent[ry] = rx
		f.rank[rx]++
		return rx
	}
}

// UnionTo merges the sets containing x and y and forces the representative
// of the merged set to be root (which must already be Find(x) or Find(y)).
// symbolic analysis needs this: the row-merge model always re-roots the
// merged pattern at the current pivot step i, regardless of rank, so that
// subsequent lookups by row id resolve to the pivot that most recently
// absorbed them (spec.md §4.3: "union the two classes ... set new root to i").
func (f *Forest) UnionTo(x, y, root int) {
	rx, ry := f.Find(x), f.Find(y)
	if rx != root {
		f.parent[rx] = root
	}
	if ry != root {
		f.parent[ry] = root
	}
	f.parent[root] = root
}
