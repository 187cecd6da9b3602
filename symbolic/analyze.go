package symbolic

import "github.com/katalvlaran/mflu/ccs"

// Analyze runs the full symbolic pipeline (C3 through C6) over a square
// sparsity pattern a, given its transpose aT and a caller-supplied column
// order. It returns the postordered, supercolumn-blocked elimination tree
// the rest of the engine schedules and factors against.
func Analyze(a, aT ccs.Sparsity, order []int, opts Options) (*Tree, error) {
	ct, err := eliminationAnalysis(a, aT, order)
	if err != nil {
		return nil, err
	}

	n := a.NumCols()
	newParent, lsize, usize, columns := relabelColumnTree(ct, order, n)
	colSizes := subtreeSizes(newParent, n)
	colDescCount := make([]int, n)
	for i, sz := range colSizes {
		colDescCount[i] = sz - 1
	}

	d := detectSupercolumns(newParent, lsize, usize, n, opts)
	d = relaxSupercolumns(d, colDescCount, opts)

	return assemble(n, columns, d), nil
}
