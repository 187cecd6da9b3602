package symbolic

import "github.com/samber/lo"

// assemble builds the final Tree from a (possibly relaxed) supercolumn
// detection plus the postordered column arrays — component C6. It computes
// children lists, roots, and descendant ranges over the supercolumn tree
// using the same contiguous-range arithmetic postorder.go applies at column
// granularity.
func assemble(n int, columns []int, d detection) *Tree {
	numSC := len(d.start)
	size := lo.Map(lo.Range(numSC), func(s, _ int) int { return d.end[s] - d.start[s] + 1 })

	firstChild := make([]int, numSC)
	nextChild := make([]int, numSC)
	for i := range firstChild {
		firstChild[i] = None
		nextChild[i] = None
	}
	firstRoot := None
	lastRoot := None
	for s := 0; s < numSC; s++ {
		p := d.parent[s]
		if p == None {
			if firstRoot == None {
				firstRoot = s
			} else {
				nextChild[lastRoot] = s
			}
			lastRoot = s
			continue
		}
		nextChild[s] = firstChild[p]
		firstChild[p] = s
	}

	// d.scL is the largest single-column L count in the supercolumn; each
	// further pivot column adds at most one row to the front, so this sum
	// bounds the frontal row count.
	lsize := lo.Map(lo.Range(numSC), func(s, _ int) int64 { return d.scL[s] + int64(size[s]-1) })

	scSizes := subtreeSizes(d.parent, numSC)
	firstDesc, lastDesc := descendantRange(numSC, scSizes)

	return &Tree{
		N:               n,
		Columns:         columns,
		NumSupercolumns: numSC,
		Start:           d.start,
		End:             d.end,
		Size:            size,
		LSize:           lsize,
		USize:           d.scU,
		Parent:          d.parent,
		FirstChild:      firstChild,
		NextChild:       nextChild,
		FirstRoot:       firstRoot,
		FirstDescIndex:  firstDesc,
		LastDescIndex:   lastDesc,
	}
}
