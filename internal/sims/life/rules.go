package life

import "mad-life/internal/core"

// Engine advances a grid by one generation. It keeps a scratch buffer for the
// next generation so repeated steps on same-sized grids do not allocate.
type Engine struct {
	nxt []uint8
}

// CountAdjacent returns the number of alive cells among the up to eight
// neighbors of (row, col). Positions outside the grid are absent.
func CountAdjacent(g *core.Grid, row, col int) int {
	h, w := g.Height(), g.Width()
	cells := g.Cells()
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r < 0 || c < 0 || r >= h || c >= w {
				continue
			}
			n += int(cells[r*w+c])
		}
	}
	return n
}

// next reports the state a cell takes given its current state and neighbor count.
func next(alive bool, neighbors int) core.CellState {
	switch {
	case neighbors == 3:
		return core.Alive
	case neighbors == 2 && alive:
		return core.Alive
	default:
		return core.Dead
	}
}

// Step computes every cell's next state from the pre-step grid, then writes
// the whole generation back. It returns the number of cells that changed.
func (e *Engine) Step(g *core.Grid) int {
	cur := g.Cells()
	if cap(e.nxt) < len(cur) {
		e.nxt = make([]uint8, len(cur))
	}
	e.nxt = e.nxt[:len(cur)]

	h, w := g.Height(), g.Width()
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			idx := r*w + c
			e.nxt[idx] = uint8(next(cur[idx] != 0, CountAdjacent(g, r, c)))
		}
	}

	changed := 0
	for i, v := range e.nxt {
		if cur[i] != v {
			changed++
		}
	}
	copy(cur, e.nxt)
	return changed
}
