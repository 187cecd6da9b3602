package front

// Workspace holds the scratch state one numeric factorization shares across
// every supercolumn it processes (spec.md §4.8, §5): the inverse row/column
// position maps and the column/row "already consumed from A" flags.
//
// MapRows/MapCols are reset to all None between supercolumns; the sharing
// discipline documented in spec.md §5 ("map_rows is shared but only one
// supercolumn task uses it at a time") is the scheduler's responsibility,
// not this type's — Workspace itself does no locking.
type Workspace struct {
	MapRows, MapCols          []int
	ColumnCleared, RowCleared []bool
}

// NewWorkspace allocates scratch sized to a matrix of order n.
func NewWorkspace(n int) *Workspace {
	w := &Workspace{
		MapRows:       make([]int, n),
		MapCols:       make([]int, n),
		ColumnCleared: make([]bool, n),
		RowCleared:    make([]bool, n),
	}
	w.ResetMaps()
	return w
}

// ResetMaps restores MapRows/MapCols to all None. NewWorkspace calls it once;
// between supercolumns, assemble.EndSupercolumn resets only the entries a
// supercolumn set.
func (w *Workspace) ResetMaps() {
	for i := range w.MapRows {
		w.MapRows[i] = None
	}
	for i := range w.MapCols {
		w.MapCols[i] = None
	}
}
