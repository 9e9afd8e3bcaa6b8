package core

import "time"

// Clock reports elapsed play time. The simulation reads it once per tick
// and derives all timing from the value, never from tick counts.
type Clock interface {
	Now() time.Duration
}

// Stopwatch is a wall-clock Clock that can be paused.
// Time spent paused is not reported as elapsed.
type Stopwatch struct {
	start   time.Time
	stopped time.Time
	paused  time.Duration
	running bool
	now     func() time.Time
}

// NewStopwatch creates a running stopwatch starting at zero.
func NewStopwatch() *Stopwatch {
	return newStopwatch(time.Now)
}

func newStopwatch(now func() time.Time) *Stopwatch {
	return &Stopwatch{start: now(), running: true, now: now}
}

// Now returns the elapsed running time.
func (s *Stopwatch) Now() time.Duration {
	end := s.now()
	if !s.running {
		end = s.stopped
	}
	return end.Sub(s.start) - s.paused
}

// Pause stops the stopwatch. Pausing twice is a no-op.
func (s *Stopwatch) Pause() {
	if !s.running {
		return
	}
	s.stopped = s.now()
	s.running = false
}

// Resume continues a paused stopwatch.
func (s *Stopwatch) Resume() {
	if s.running {
		return
	}
	s.paused += s.now().Sub(s.stopped)
	s.running = true
}

// Running reports whether the stopwatch is counting.
func (s *Stopwatch) Running() bool {
	return s.running
}

// ManualClock is a Clock advanced explicitly. Used by tests and the
// headless runner.
type ManualClock struct {
	t time.Duration
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.t
}

// Advance moves the clock forward by d. Negative values are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.t += d
	}
}
