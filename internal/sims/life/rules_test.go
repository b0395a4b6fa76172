package life

import (
	"testing"

	"mad-life/internal/core"
)

func newGrid(t *testing.T, h, w int, alive ...[2]int) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(h, w, core.Dead)
	if err != nil {
		t.Fatal(err)
	}
	for _, rc := range alive {
		if err := g.Set(rc[0], rc[1], core.Alive); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func expectAlive(t *testing.T, g *core.Grid, label string, alive ...[2]int) {
	t.Helper()
	expects := map[[2]int]bool{}
	for _, rc := range alive {
		expects[rc] = true
	}
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			state, _ := g.Get(r, c)
			if got := state == core.Alive; got != expects[[2]int{r, c}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, r, c, got, expects[[2]int{r, c}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	var e Engine
	g := newGrid(t, 3, 3, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})

	e.Step(g)
	expectAlive(t, g, "after first step", [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1})

	e.Step(g)
	expectAlive(t, g, "after second step", [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})
}

func TestCountAdjacentExcludesSelfAndOutside(t *testing.T) {
	g, _ := core.NewGrid(3, 3, core.Alive)
	cases := []struct {
		row, col, want int
	}{
		{1, 1, 8},
		{0, 0, 3},
		{0, 1, 5},
		{2, 2, 3},
		{2, 1, 5},
	}
	for _, tc := range cases {
		if got := CountAdjacent(g, tc.row, tc.col); got != tc.want {
			t.Fatalf("CountAdjacent(%d,%d)=%d, expected %d", tc.row, tc.col, got, tc.want)
		}
	}

	single, _ := core.NewGrid(1, 1, core.Alive)
	if got := CountAdjacent(single, 0, 0); got != 0 {
		t.Fatalf("1x1 grid has no neighbors, got %d", got)
	}
}

func TestStepAllDeadStaysDead(t *testing.T) {
	var e Engine
	g := newGrid(t, 6, 7)
	if changed := e.Step(g); changed != 0 {
		t.Fatalf("expected no changes, got %d", changed)
	}
	if g.Population() != 0 {
		t.Fatal("all-dead grid produced life")
	}
}

func TestStepIsolatedCellDies(t *testing.T) {
	var e Engine
	g := newGrid(t, 3, 3, [2]int{1, 1})
	e.Step(g)
	expectAlive(t, g, "isolated")
}

// neighborhood returns the coordinates of the first n neighbors of (2,2) in a
// fixed order.
func neighborhood(n int) [][2]int {
	offsets := [][2]int{{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}
	return offsets[:n]
}

func TestStepOutcomeByNeighborCount(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for _, selfAlive := range []bool{false, true} {
			alive := neighborhood(n)
			if selfAlive {
				alive = append(alive, [2]int{2, 2})
			}
			g := newGrid(t, 5, 5, alive...)
			var e Engine
			e.Step(g)

			state, _ := g.Get(2, 2)
			want := core.Dead
			if n == 3 || (n == 2 && selfAlive) {
				want = core.Alive
			}
			if state != want {
				t.Fatalf("neighbors=%d self=%v: got %v, expected %v", n, selfAlive, state, want)
			}
		}
	}
}

func TestStepUsesPreStepStates(t *testing.T) {
	// A block is a still life only if every cell is evaluated against the
	// same generation.
	var e Engine
	block := [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	g := newGrid(t, 4, 4, block...)
	for i := 0; i < 3; i++ {
		e.Step(g)
	}
	expectAlive(t, g, "block", block...)
}

func TestStepIsNotToroidal(t *testing.T) {
	// A vertical blinker against the left edge would wrap onto the right edge
	// on a torus.
	var e Engine
	g := newGrid(t, 5, 5, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0})
	e.Step(g)
	expectAlive(t, g, "edge blinker", [2]int{2, 0}, [2]int{2, 1})
}
