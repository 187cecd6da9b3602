package fixtures

import "github.com/katalvlaran/mflu/ccs"

// FourWaySeparator50 builds a 50x50 matrix with a nested-dissection
// structure (spec.md §8 scenario 5): four independent 10-column leaf
// blocks (L0..L3), each internally tridiagonal, whose last ("interface")
// column couples lightly to a 4-column separator (S0 joins L0/L1, S1
// joins L2/L3); the two separators' interface columns in turn couple to a
// 2-column top separator T. No leaf couples directly to the other leaf
// pair or to T, and column index order already IS the nested-dissection
// order (leaves, then their separator, then the top), so the identity
// permutation is a valid column_order.
//
// Coupling weight is kept small (0.1) relative to the tridiagonal
// diagonals (4 for leaves, 8 for separators, 10 for top) so every row
// stays diagonally dominant regardless of how many cross-level couplings
// land on it — no pivoting is required at threshold 1.0.
func FourWaySeparator50() (*ccs.CCS[float64], []int) {
	const n = 50
	t := newTriplets(n, n)

	type block struct{ lo, hi int }
	l0 := block{0, 10}
	l1 := block{10, 20}
	s0 := block{20, 24}
	l2 := block{24, 34}
	l3 := block{34, 44}
	s1 := block{44, 48}
	top := block{48, 50}

	addTridiag(t, l0.lo, l0.hi, 4, -1)
	addTridiag(t, l1.lo, l1.hi, 4, -1)
	addTridiag(t, s0.lo, s0.hi, 8, -1)
	addTridiag(t, l2.lo, l2.hi, 4, -1)
	addTridiag(t, l3.lo, l3.hi, 4, -1)
	addTridiag(t, s1.lo, s1.hi, 8, -1)
	addTridiag(t, top.lo, top.hi, 10, -1)

	addCoupling(t, l0.hi-1, s0.lo, s0.hi, 0.1)
	addCoupling(t, l1.hi-1, s0.lo, s0.hi, 0.1)
	addCoupling(t, l2.hi-1, s1.lo, s1.hi, 0.1)
	addCoupling(t, l3.hi-1, s1.lo, s1.hi, 0.1)
	addCoupling(t, s0.hi-1, top.lo, top.hi, 0.1)
	addCoupling(t, s1.hi-1, top.lo, top.hi, 0.1)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	return t.build(n), order
}

// addTridiag adds a tridiagonal pattern over the half-open column range
// [lo,hi), diag on the main diagonal and off on both neighbors.
func addTridiag(t *triplets, lo, hi int, diag, off float64) {
	for j := lo; j < hi; j++ {
		if j > lo {
			t.add(j-1, j, off)
		}
		t.add(j, j, diag)
		if j+1 < hi {
			t.add(j+1, j, off)
		}
	}
}

// addCoupling adds symmetric entries of weight w between column leafCol
// and every column in [sepLo,sepHi).
func addCoupling(t *triplets, leafCol, sepLo, sepHi int, w float64) {
	for sepCol := sepLo; sepCol < sepHi; sepCol++ {
		t.add(leafCol, sepCol, w)
		t.add(sepCol, leafCol, w)
	}
}
