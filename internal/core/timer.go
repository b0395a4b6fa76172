package core

import (
	"sync"
	"time"
)

// Scheduler issues a callback every interval until the returned stop function
// is called. Stop must be idempotent and must not block on an in-flight
// callback.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (stop func())
}

// TickerScheduler runs each schedule on its own goroutine backed by a
// time.Ticker.
type TickerScheduler struct{}

// Every implements Scheduler.
func (TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

// FixedStep accumulates elapsed time and reports how many whole intervals
// have passed.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedStep constructs a FixedStep for the given interval. Non-positive
// intervals fall back to one tick per second.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the step length without discarding accumulated time.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	f.step = interval
}

// Advance adds delta to the accumulator and returns the number of steps due.
func (f *FixedStep) Advance(delta time.Duration) int {
	if delta > 0 {
		f.accumulator += delta
	}
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	return n
}

type manualEntry struct {
	fs      *FixedStep
	fn      func()
	stopped bool
}

// ManualScheduler fires callbacks only when Advance is called, using virtual
// time. It lets tests and frame loops drive a Clock deterministically.
type ManualScheduler struct {
	mu      sync.Mutex
	entries []*manualEntry
}

// NewManualScheduler returns an empty ManualScheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Every implements Scheduler.
func (m *ManualScheduler) Every(interval time.Duration, fn func()) func() {
	e := &manualEntry{fs: NewFixedStep(interval), fn: fn}
	m.mu.Lock()
	m.entries = append(m.entries, e)
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		e.stopped = true
		for i, other := range m.entries {
			if other == e {
				m.entries = append(m.entries[:i], m.entries[i+1:]...)
				break
			}
		}
	}
}

// Active reports the number of schedules that have not been stopped.
func (m *ManualScheduler) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Advance moves virtual time forward by d and fires every due callback.
// Callbacks run without the scheduler lock held, so they may start or stop
// schedules. It returns the number of callbacks fired.
func (m *ManualScheduler) Advance(d time.Duration) int {
	type due struct {
		e *manualEntry
		n int
	}
	m.mu.Lock()
	pending := make([]due, 0, len(m.entries))
	for _, e := range m.entries {
		if n := e.fs.Advance(d); n > 0 {
			pending = append(pending, due{e: e, n: n})
		}
	}
	m.mu.Unlock()

	fired := 0
	for _, p := range pending {
		for i := 0; i < p.n; i++ {
			if m.isStopped(p.e) {
				break
			}
			p.e.fn()
			fired++
		}
	}
	return fired
}

func (m *ManualScheduler) isStopped(e *manualEntry) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return e.stopped
}

// FrameScheduler is a ManualScheduler advanced by wall-clock time from a
// render loop, so callbacks run on the loop's goroutine.
type FrameScheduler struct {
	*ManualScheduler
	last time.Time
	now  func() time.Time
}

// NewFrameScheduler returns a FrameScheduler reading time.Now.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{ManualScheduler: NewManualScheduler(), now: time.Now}
}

// Pump advances by the wall time elapsed since the previous Pump.
func (f *FrameScheduler) Pump() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Advance(delta)
}
