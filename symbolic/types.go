package symbolic

import "github.com/samber/lo"

// None marks the absence of a parent, child, or descendant in every tree
// array this package produces.
const None = -1

// DefaultOverfill is the fill-growth factor C5's amalgamation bound uses
// when a caller passes zero.
const DefaultOverfill = 2

// DefaultRelaxSize is the descendant-count threshold below which a small
// leaf subtree is folded into its parent supercolumn during relaxation
// (spec.md §4.5 RELAX_RULE_SIZE).
const DefaultRelaxSize = 20

// Options tunes supercolumn detection. A zero Options is not valid on its
// own; callers should start from DefaultOptions().
type Options struct {
	// MaxSupercolumnSize caps how many columns one supercolumn may absorb,
	// regardless of overfill; zero means unlimited.
	MaxSupercolumnSize int

	// Overfill bounds amalgamation: a candidate column is rejected from the
	// current supercolumn when admitting it would make
	// max(sc_l,sc_u)*size exceed Overfill times the sum of the group's
	// per-column bounds.
	Overfill int64

	// RelaxSize is the descendant-count threshold the relaxation pass
	// applies to a parent supercolumn's last column (spec.md §4.5).
	RelaxSize int
}

// DefaultOptions returns the tuning spec.md's worked examples assume.
func DefaultOptions() Options {
	return Options{MaxSupercolumnSize: 0, Overfill: DefaultOverfill, RelaxSize: DefaultRelaxSize}
}

// columnTree is the per-column (pre-blocking) elimination tree component C3
// builds, indexed by pivot step over the caller's column order.
type columnTree struct {
	parent []int // parent[i], None if root, indices are pivot steps 0..n-1
	lsize  []int // upper bound on L-column i's row count
	usize  []int // upper bound on U-row i's column count
}

// Tree is the postordered, supercolumn-blocked elimination tree: the
// complete result of symbolic analysis (C3 through C6).
type Tree struct {
	N int // matrix order

	// Columns holds the final postorder: Columns[pos] is the original column
	// index placed at postorder position pos.
	Columns []int

	NumSupercolumns int

	// Per-supercolumn s (0 <= s < NumSupercolumns), in postorder:
	Start           []int   // first postorder column position covered by s
	End             []int   // last postorder column position covered by s (inclusive)
	Size            []int   // End[s]-Start[s]+1
	LSize           []int64 // upper bound on frontal row count
	USize           []int64 // upper bound on frontal column count
	Parent          []int   // supercolumn index, None if root
	FirstChild      []int
	NextChild       []int
	FirstRoot       int
	FirstDescIndex  []int // None if s is a leaf
	LastDescIndex   []int // None if s is a leaf
}

// CoveredColumns returns the original column indices supercolumn s covers,
// in postorder.
func (t *Tree) CoveredColumns(s int) []int {
	return lo.Slice(t.Columns, t.Start[s], t.End[s]+1)
}

// SupercolumnOf returns the supercolumn index covering postorder column
// position pos.
func (t *Tree) SupercolumnOf(pos int) int {
	lo, hi := 0, t.NumSupercolumns-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if t.Start[mid] <= pos {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
