package core

import "fmt"

// CellState is the binary state held by a single grid position.
type CellState uint8

const (
	// Dead marks an empty cell.
	Dead CellState = iota
	// Alive marks a live cell.
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Grid stores a height×width matrix of cell states in row-major order.
// Dimensions are fixed for the lifetime of the grid.
type Grid struct {
	h, w int
	data []uint8
}

// NewGrid allocates a grid with every cell set to fill.
func NewGrid(height, width int, fill CellState) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("core: grid %dx%d: %w", height, width, ErrInvalidConfig)
	}
	g := &Grid{h: height, w: width, data: make([]uint8, height*width)}
	if fill == Alive {
		g.Fill(Alive)
	}
	return g, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < g.h && col < g.w
}

// Index returns the linear slice index for (row, col). It does not check bounds.
func (g *Grid) Index(row, col int) int { return row*g.w + col }

// Get returns the state at (row, col).
func (g *Grid) Get(row, col int) (CellState, error) {
	if !g.InBounds(row, col) {
		return Dead, g.outOfBounds(row, col)
	}
	return CellState(g.data[g.Index(row, col)]), nil
}

// Set writes the state at (row, col).
func (g *Grid) Set(row, col int, state CellState) error {
	if !g.InBounds(row, col) {
		return g.outOfBounds(row, col)
	}
	g.data[g.Index(row, col)] = uint8(state)
	return nil
}

// Cells exposes the backing slice (0 dead, 1 alive) in row-major order.
func (g *Grid) Cells() []uint8 { return g.data }

// Fill sets every cell to state.
func (g *Grid) Fill(state CellState) {
	for i := range g.data {
		g.data[i] = uint8(state)
	}
}

// Population counts alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

func (g *Grid) outOfBounds(row, col int) error {
	return fmt.Errorf("core: cell (%d,%d) outside %dx%d grid: %w", row, col, g.h, g.w, ErrOutOfBounds)
}
