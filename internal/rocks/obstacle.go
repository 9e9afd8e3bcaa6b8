package rocks

import (
	"math"
	"time"
)

// ObstacleState is the lifecycle stage of a pool slot.
type ObstacleState int

const (
	StateDead     ObstacleState = iota // slot free
	StateFalling                       // above the bottom row
	StateSettled                       // pinned on the bottom row for one tick
)

// String returns a human-readable name for the state.
func (s ObstacleState) String() string {
	switch s {
	case StateDead:
		return "dead"
	case StateFalling:
		return "falling"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Obstacle is a falling rock. Its row is the floor of a continuous
// position advanced by elapsed time over its fall rate.
type Obstacle struct {
	fp       Footprint
	slot     int
	position float64 // rows fallen, sub-cell precision
	rate     float64 // ms per row
	state    ObstacleState
}

// spawn puts the obstacle into the falling state at the top row.
func (o *Obstacle) spawn(glyphs string, left int, rate float64) {
	o.fp = NewFootprint(glyphs, left, 0)
	o.position = 0
	o.rate = rate
	o.state = StateFalling
}

// Footprint returns the obstacle's position and glyphs.
func (o *Obstacle) Footprint() Footprint {
	return o.fp
}

// Slot returns the pool slot id, -1 for the seeker.
func (o *Obstacle) Slot() int {
	return o.slot
}

// Rate returns the fall rate in ms per row.
func (o *Obstacle) Rate() float64 {
	return o.rate
}

// State returns the lifecycle stage.
func (o *Obstacle) State() ObstacleState {
	return o.state
}

// Alive reports whether the obstacle occupies its slot.
func (o *Obstacle) Alive() bool {
	return o.state != StateDead
}

// Advance moves the obstacle down by elapsed time. lastRow is the bottom
// sky row. It returns true when the obstacle left the board this tick;
// the caller credits the reward.
//
// The row is bounds-checked as a float before it becomes an index, so a
// stalled tick that computes a row far below the board despawns instead of
// indexing out of range.
func (o *Obstacle) Advance(elapsed time.Duration, lastRow int) bool {
	if !o.Alive() {
		return false
	}
	if elapsed > 0 {
		o.position += float64(elapsed) / float64(time.Millisecond) / o.rate
	}

	if o.state == StateSettled {
		o.kill()
		return true
	}

	row := math.Floor(o.position)
	if row > float64(lastRow) {
		o.kill()
		return true
	}

	o.fp.Top = int(row)
	if o.fp.Top == lastRow {
		o.state = StateSettled
	}
	return false
}

func (o *Obstacle) kill() {
	o.state = StateDead
}

// Commit draws a live obstacle into the grid. Obstacles overlapping each
// other is not a collision, so callers ignore the result.
func (o *Obstacle) Commit(g *Grid) bool {
	if !o.Alive() {
		return false
	}
	return o.fp.commit(g)
}
