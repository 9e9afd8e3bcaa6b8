package rocks

import "time"

// Pool is a fixed arena of obstacle slots recycled in round-robin order.
// One slot is always kept free, so at most Capacity()-1 obstacles are live.
type Pool struct {
	slots  []Obstacle
	live   int
	cursor int // slot of the most recent spawn
}

// NewPool allocates capacity dead slots.
func NewPool(capacity int) *Pool {
	p := &Pool{slots: make([]Obstacle, capacity)}
	for i := range p.slots {
		p.slots[i].slot = i
	}
	p.cursor = capacity - 1 // first spawn wraps to slot 0
	return p
}

// Capacity returns the number of slots.
func (p *Pool) Capacity() int {
	return len(p.slots)
}

// Live returns the number of live obstacles.
func (p *Pool) Live() int {
	return p.live
}

// Slot returns the obstacle in slot i.
func (p *Pool) Slot(i int) *Obstacle {
	return &p.slots[i]
}

// TrySpawn starts a new obstacle in the slot after the cursor. It does
// nothing when the pool is full or that slot's previous occupant is still
// falling; the caller simply tries again on a later tick.
func (p *Pool) TrySpawn(glyphs string, left int, rate float64) (int, bool) {
	if p.live >= len(p.slots)-1 {
		return -1, false
	}
	next := p.cursor + 1
	if next >= len(p.slots) {
		next = 0
	}
	if p.slots[next].Alive() {
		return -1, false
	}

	p.slots[next].spawn(glyphs, left, rate)
	p.cursor = next
	p.live++
	return next, true
}

// AdvanceAll advances and commits every live obstacle. despawned is called
// for each obstacle that left the board this tick.
func (p *Pool) AdvanceAll(elapsed time.Duration, g *Grid, despawned func(*Obstacle)) {
	lastRow := g.Height() - 1
	for i := range p.slots {
		o := &p.slots[i]
		if !o.Alive() {
			continue
		}
		if o.Advance(elapsed, lastRow) {
			p.live--
			if despawned != nil {
				despawned(o)
			}
			continue
		}
		o.Commit(g)
	}
}
