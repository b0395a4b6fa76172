package life

import (
	"fmt"

	"mad-life/internal/core"
)

// Randomize sets each cell alive with probability density/100, drawing
// independently per cell.
func Randomize(g *core.Grid, density int, rng *core.RNG) error {
	if err := validateDensity(density); err != nil {
		return err
	}
	cells := g.Cells()
	for i := range cells {
		if rng.Percent() < density {
			cells[i] = uint8(core.Alive)
		} else {
			cells[i] = uint8(core.Dead)
		}
	}
	return nil
}

func validateDensity(density int) error {
	if density < 0 || density > 100 {
		return fmt.Errorf("life: density %d outside [0,100]: %w", density, core.ErrInvalidConfig)
	}
	return nil
}
