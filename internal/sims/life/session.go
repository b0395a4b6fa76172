package life

import (
	"io"
	"log"
	"sync"

	"mad-life/internal/core"
)

// Session owns one simulation: its grid, rule engine, seeder RNG and clock.
// All methods are safe for concurrent use; steps, edits and resizes are
// serialized on a single lock shared with the clock.
type Session struct {
	mu sync.Mutex

	cfg        Config
	grid       *core.Grid
	engine     Engine
	rng        *core.RNG
	clock      *Clock
	generation uint64
	logger     *log.Logger
}

var _ core.Sim = (*Session)(nil)

// Option customizes a Session.
type Option func(*Session)

// WithScheduler sets the periodic trigger used by the clock. The default is
// core.TickerScheduler.
func WithScheduler(s core.Scheduler) Option {
	return func(sess *Session) {
		if s == nil {
			s = core.TickerScheduler{}
		}
		sess.clock.sched = s
	}
}

// WithLogger routes session events to l. The default discards them.
func WithLogger(l *log.Logger) Option {
	return func(sess *Session) { sess.logger = l }
}

// Initialize validates cfg and builds a stopped session over an all-dead grid.
func Initialize(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := core.NewGrid(cfg.Height, cfg.Width, core.Dead)
	if err != nil {
		return nil, err
	}
	s := &Session{
		cfg:    cfg,
		grid:   grid,
		rng:    core.NewRNG(cfg.Seed),
		logger: log.New(io.Discard, "", 0),
	}
	s.clock, err = newClock(&s.mu, core.TickerScheduler{}, cfg.IntervalMS, s.stepLocked)
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Name returns the simulation identifier.
func (s *Session) Name() string { return "life" }

// Size returns the current grid dimensions.
func (s *Session) Size() core.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Size()
}

// Config returns a copy of the current configuration.
func (s *Session) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Clock exposes the session's clock. Its methods share the session lock.
func (s *Session) Clock() *Clock { return s.clock }

// Step advances one generation immediately, regardless of clock state.
func (s *Session) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stepLocked()
}

func (s *Session) stepLocked() {
	s.engine.Step(s.grid)
	s.generation++
}

// Start begins periodic stepping.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clock.state == Stopped {
		s.logger.Printf("life: start at %v", s.clock.interval)
	}
	s.clock.start()
}

// Pause stops periodic stepping.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clock.state == Running {
		s.logger.Printf("life: pause at generation %d", s.generation)
	}
	s.clock.pause()
}

// Toggle flips between running and stopped and returns the new state.
func (s *Session) Toggle() ClockState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.clock.toggle()
	s.logger.Printf("life: clock %s", state)
	return state
}

// Running reports whether the clock is active.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock.state == Running
}

// SetInterval changes the step interval; a running clock keeps running.
func (s *Session) SetInterval(ms int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.clock.setInterval(ms); err != nil {
		return err
	}
	s.cfg.IntervalMS = ms
	s.logger.Printf("life: interval %dms", ms)
	return nil
}

// SetDensity changes the density used by Reset and Restart.
func (s *Session) SetDensity(density int) error {
	if err := validateDensity(density); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Density = density
	return nil
}

// ToggleCell flips a single cell.
func (s *Session) ToggleCell(row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.grid.Get(row, col)
	if err != nil {
		return err
	}
	if state == core.Alive {
		return s.grid.Set(row, col, core.Dead)
	}
	return s.grid.Set(row, col, core.Alive)
}

// CellState reads a single cell.
func (s *Session) CellState(row, col int) (core.CellState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Get(row, col)
}

// Cells copies the grid into dst in row-major order.
func (s *Session) Cells(dst []uint8) []uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(dst[:0], s.grid.Cells()...)
}

// Generation returns the number of steps applied since the last clear.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Population counts alive cells.
func (s *Session) Population() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Population()
}

// RandomizeSeed reseeds every cell with the given density.
func (s *Session) RandomizeSeed(density int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := Randomize(s.grid, density, s.rng); err != nil {
		return err
	}
	s.generation = 0
	s.logger.Printf("life: randomized at %d%%, population %d", density, s.grid.Population())
	return nil
}

// Reset reseeds the RNG and randomizes the grid at the configured density.
func (s *Session) Reset(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Seed = seed
	s.rng = core.NewRNG(seed)
	// Density was validated when it was stored.
	_ = Randomize(s.grid, s.cfg.Density, s.rng)
	s.generation = 0
}

// Clear kills every cell and zeroes the generation counter.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Fill(core.Dead)
	s.generation = 0
}

// Restart stops the clock, rebuilds the grid at the configured size and seeds
// it at the configured density. The clock resumes only if it was running.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	grid, err := core.NewGrid(s.cfg.Height, s.cfg.Width, core.Dead)
	if err != nil {
		return err
	}
	if err := Randomize(grid, s.cfg.Density, s.rng); err != nil {
		return err
	}
	wasRunning := s.clock.state == Running
	s.clock.pause()
	s.grid = grid
	s.generation = 0
	s.clock.ticks = 0
	if wasRunning {
		s.clock.start()
	}
	s.logger.Printf("life: restart %dx%d, population %d", grid.Height(), grid.Width(), grid.Population())
	return nil
}

// Snapshot captures the currently alive cells.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Capture(s.grid)
}

// Restore replaces the grid contents with snap, clipped to the overlap.
func (s *Session) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Fill(core.Dead)
	Restore(snap, s.grid)
}

// Resize swaps in a new grid of the given dimensions carrying over the
// overlapping alive cells. The clock is stopped for the swap and resumed only
// if it was running before.
func (s *Session) Resize(height, width int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	grid, err := core.NewGrid(height, width, core.Dead)
	if err != nil {
		return err
	}

	wasRunning := s.clock.state == Running
	s.clock.pause()
	snap := Capture(s.grid)
	Restore(snap, grid)
	s.grid = grid
	s.cfg.Height, s.cfg.Width = height, width
	if wasRunning {
		s.clock.start()
	}
	s.logger.Printf("life: resized to %dx%d", height, width)
	return nil
}
