package assemble

import (
	"github.com/katalvlaran/mflu/front"
	"github.com/katalvlaran/mflu/kindset"
)

// AlignAddSmall is the rectangle size below which align-add stops
// subdividing for parallelism (spec.md §4.9, ALIGN_ADD_SMALL = 80).
const AlignAddSmall = 80

// AlignAdd scatters every live descendant contribution with L_member or
// U_member set into addto, translating original row/column indices through
// ws.MapRows/MapCols (spec.md §4.9). Descendants fully consumed become nil
// in descendants.
//
// This sequential form performs the scalar scatter directly; AlignAddParallel
// below applies the same recursive rectangle subdivision the spec
// describes for the fork-join scheduler.
func AlignAdd[T kindset.Numeric](addto front.Contribution[T], descendants []*front.Block[T], ws *front.Workspace) {
	for _, d := range descendants {
		c := d.Contrib
		if c == nil || !(c.LMember || c.UMember) {
			continue
		}
		scatterOne(addto, c, ws)
		if c.Empty() {
			d.Contrib = nil
		} else {
			c.LMember, c.UMember = false, false
		}
	}
}

// AlignAddParallel is AlignAdd's fork-join counterpart: the LUSon
// (full-rectangle) case is dispatched through sp via
// ParallelAlignAddRectangle instead of a single-threaded scatterRectangle,
// so a large Schur block's scatter into the parent front is itself
// subdivided across the scheduler's worker pool (spec.md §4.9, §4.11).
// Lson/Uson descendants still scatter sequentially: a single row or column
// pass is already too small to subdivide profitably.
func AlignAddParallel[T kindset.Numeric](sp Spawner, addto front.Contribution[T], descendants []*front.Block[T], ws *front.Workspace) {
	for _, d := range descendants {
		c := d.Contrib
		if c == nil || !(c.LMember || c.UMember) {
			continue
		}
		if c.LMember && c.UMember {
			ParallelAlignAddRectangle(sp, addto, c, ws, 0, c.M, 0, c.N)
			c.M, c.N = 0, 0
		} else {
			scatterOne(addto, c, ws)
		}
		if c.Empty() {
			d.Contrib = nil
		} else {
			c.LMember, c.UMember = false, false
		}
	}
}

func scatterOne[T kindset.Numeric](addto front.Contribution[T], c *front.Contribution[T], ws *front.Workspace) {
	switch {
	case c.LMember && c.UMember:
		// LUSon: every row and column of c is guaranteed present in addto,
		// so the whole block is consumed in one pass.
		scatterRectangle(addto, c, ws, 0, c.M, 0, c.N)
		c.M, c.N = 0, 0
	case c.LMember:
		// Lson: rows may be absent; columns are present.
		for k := c.M - 1; k >= 0; k-- {
			row := c.Rows[k]
			if ws.MapRows[row] == front.None {
				continue
			}
			scatterRow(addto, c, ws, k)
		}
		compactAbsentRows(c, ws)
	case c.UMember:
		for k := c.N - 1; k >= 0; k-- {
			col := c.Cols[k]
			if ws.MapCols[col] == front.None {
				continue
			}
			scatterCol(addto, c, ws, k)
		}
		compactAbsentCols(c, ws)
	}
}

func scatterRectangle[T kindset.Numeric](addto front.Contribution[T], c *front.Contribution[T], ws *front.Workspace, r0, r1, c0, c1 int) {
	for k := r0; k < r1; k++ {
		row := c.Rows[k]
		rp := ws.MapRows[row]
		if rp == front.None {
			continue
		}
		for j := c0; j < c1; j++ {
			col := c.Cols[j]
			cp := ws.MapCols[col]
			if cp == front.None {
				continue
			}
			addto.Set(rp, cp, addto.At(rp, cp)+c.Dense().At(k, j))
		}
	}
}

// Spawner is the fork-join capability spec.md §5 requires of the runtime:
// spawn a task, then Sync waits for every task spawned since the matching
// Spawn call to finish, with strict LIFO nesting. schedule.Group satisfies
// this via golang.org/x/sync/errgroup.
type Spawner interface {
	Spawn(func())
	Sync()
}

// ParallelAlignAddRectangle scatters the LUSon case over a sp, recursively
// halving the larger of the (m,n) dimensions while it exceeds
// AlignAddSmall, spawning each half as an independent task (spec.md §4.9).
// Only the LUSon (full-rectangle) case benefits from subdivision: Lson/Uson
// already run a single vector pass per row/column.
func ParallelAlignAddRectangle[T kindset.Numeric](sp Spawner, addto front.Contribution[T], c *front.Contribution[T], ws *front.Workspace, r0, r1, c0, c1 int) {
	m, n := r1-r0, c1-c0
	if m <= AlignAddSmall && n <= AlignAddSmall {
		scatterRectangle(addto, c, ws, r0, r1, c0, c1)
		return
	}
	if m >= n {
		mid := r0 + m/2
		sp.Spawn(func() { ParallelAlignAddRectangle(sp, addto, c, ws, r0, mid, c0, c1) })
		ParallelAlignAddRectangle(sp, addto, c, ws, mid, r1, c0, c1)
	} else {
		mid := c0 + n/2
		sp.Spawn(func() { ParallelAlignAddRectangle(sp, addto, c, ws, r0, r1, c0, mid) })
		ParallelAlignAddRectangle(sp, addto, c, ws, r0, r1, mid, c1)
	}
	sp.Sync()
}

func scatterRow[T kindset.Numeric](addto front.Contribution[T], c *front.Contribution[T], ws *front.Workspace, k int) {
	row := c.Rows[k]
	rp := ws.MapRows[row]
	for j := 0; j < c.N; j++ {
		col := c.Cols[j]
		cp := ws.MapCols[col]
		if cp == front.None {
			continue
		}
		addto.Set(rp, cp, addto.At(rp, cp)+c.Dense().At(k, j))
	}
}

func scatterCol[T kindset.Numeric](addto front.Contribution[T], c *front.Contribution[T], ws *front.Workspace, k int) {
	col := c.Cols[k]
	cp := ws.MapCols[col]
	for i := 0; i < c.M; i++ {
		row := c.Rows[i]
		rp := ws.MapRows[row]
		if rp == front.None {
			continue
		}
		addto.Set(rp, cp, addto.At(rp, cp)+c.Dense().At(i, k))
	}
}

// compactAbsentRows removes, from c, every row present in addto (mapped in
// ws.MapRows), i.e. the rows the scatter just absorbed (spec.md §4.9 Lson).
func compactAbsentRows[T kindset.Numeric](c *front.Contribution[T], ws *front.Workspace) {
	k := 0
	for k < c.M {
		row := c.Rows[k]
		if ws.MapRows[row] != front.None {
			c.RemoveRow(k)
			continue
		}
		k++
	}
}

func compactAbsentCols[T kindset.Numeric](c *front.Contribution[T], ws *front.Workspace) {
	k := 0
	for k < c.N {
		col := c.Cols[k]
		if ws.MapCols[col] != front.None {
			c.RemoveCol(k)
			continue
		}
		k++
	}
}
