package life

import "mad-life/internal/core"

// Snapshot records which cells were alive at capture time. It is independent
// of the grid it was taken from; the zero value is an empty snapshot.
type Snapshot struct {
	h, w  int
	alive []bool
}

// Height returns the number of captured rows.
func (s Snapshot) Height() int { return s.h }

// Width returns the number of captured columns.
func (s Snapshot) Width() int { return s.w }

// Alive reports whether (row, col) was alive. Positions outside the snapshot
// report false.
func (s Snapshot) Alive(row, col int) bool {
	if row < 0 || col < 0 || row >= s.h || col >= s.w {
		return false
	}
	return s.alive[row*s.w+col]
}

// Capture copies the alive cells of g.
func Capture(g *core.Grid) Snapshot {
	cells := g.Cells()
	s := Snapshot{h: g.Height(), w: g.Width(), alive: make([]bool, len(cells))}
	for i, c := range cells {
		s.alive[i] = c != 0
	}
	return s
}

// Restore marks alive every cell of target that was alive in s, aligned at
// the origin and clipped to the overlapping region. Other cells are left
// untouched.
func Restore(s Snapshot, target *core.Grid) {
	rows := min(s.h, target.Height())
	cols := min(s.w, target.Width())
	cells := target.Cells()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if s.alive[r*s.w+c] {
				cells[target.Index(r, c)] = uint8(core.Alive)
			}
		}
	}
}
