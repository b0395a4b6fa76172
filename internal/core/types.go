package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a front end needs to drive and draw a
// simulation.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	// Cells copies the current cell values into dst (grown as needed) and
	// returns it.
	Cells(dst []uint8) []uint8
}
