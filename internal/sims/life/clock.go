package life

import (
	"sync"
	"time"

	"mad-life/internal/core"
)

// ClockState is the run state of a Clock.
type ClockState int

const (
	// Stopped means no schedule is active.
	Stopped ClockState = iota
	// Running means exactly one schedule is active.
	Running
)

func (s ClockState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Clock calls a step function every interval on a Scheduler. At most one
// schedule is active at a time. The step function runs with the clock's lock
// held.
type Clock struct {
	lock     sync.Locker
	sched    core.Scheduler
	interval time.Duration
	step     func()

	state ClockState
	stop  func()
	epoch uint64
	ticks uint64
}

// NewClock returns a stopped Clock. intervalMS must be positive.
func NewClock(sched core.Scheduler, intervalMS int, step func()) (*Clock, error) {
	return newClock(&sync.Mutex{}, sched, intervalMS, step)
}

func newClock(lock sync.Locker, sched core.Scheduler, intervalMS int, step func()) (*Clock, error) {
	if err := validateInterval(intervalMS); err != nil {
		return nil, err
	}
	if sched == nil {
		sched = core.TickerScheduler{}
	}
	return &Clock{
		lock:     lock,
		sched:    sched,
		interval: time.Duration(intervalMS) * time.Millisecond,
		step:     step,
	}, nil
}

// Start begins stepping. It is a no-op while running.
func (c *Clock) Start() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.start()
}

// Pause cancels the active schedule. It is a no-op while stopped.
func (c *Clock) Pause() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.pause()
}

// Stop is an alias for Pause.
func (c *Clock) Stop() { c.Pause() }

// Toggle pauses a running clock and starts a stopped one.
func (c *Clock) Toggle() ClockState {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.toggle()
}

// Reset pauses the clock and zeroes its tick counter.
func (c *Clock) Reset() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.pause()
	c.ticks = 0
}

// SetInterval changes the interval. A running clock is restarted on the new
// interval.
func (c *Clock) SetInterval(ms int) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.setInterval(ms)
}

// State reports whether the clock is running.
func (c *Clock) State() ClockState {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.state
}

// Interval returns the configured interval.
func (c *Clock) Interval() time.Duration {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.interval
}

// Ticks returns the number of steps issued since creation or the last Reset.
func (c *Clock) Ticks() uint64 {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.ticks
}

// The methods below require c.lock to be held.

func (c *Clock) start() {
	if c.state == Running {
		return
	}
	c.epoch++
	epoch := c.epoch
	c.state = Running
	c.stop = c.sched.Every(c.interval, func() { c.fire(epoch) })
}

func (c *Clock) pause() {
	if c.state == Stopped {
		return
	}
	c.state = Stopped
	c.epoch++
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}

func (c *Clock) toggle() ClockState {
	if c.state == Running {
		c.pause()
	} else {
		c.start()
	}
	return c.state
}

func (c *Clock) setInterval(ms int) error {
	if err := validateInterval(ms); err != nil {
		return err
	}
	c.interval = time.Duration(ms) * time.Millisecond
	if c.state == Running {
		c.pause()
		c.start()
	}
	return nil
}

// fire runs one step unless the schedule that issued it has been superseded.
func (c *Clock) fire(epoch uint64) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.state != Running || epoch != c.epoch {
		return
	}
	c.ticks++
	if c.step != nil {
		c.step()
	}
}
