package rocks

import "github.com/vovakirdan/falling-rocks/internal/core"

// Autopilot picks one command per tick by looking at the rows above the
// player. Used by the headless runner.
type Autopilot struct {
	lookahead int
}

// NewAutopilot creates an autopilot that scans lookahead rows above the player.
func NewAutopilot(lookahead int) *Autopilot {
	if lookahead < 1 {
		lookahead = 1
	}
	return &Autopilot{lookahead: lookahead}
}

// Decide returns the move that keeps the player's footprint farthest from
// the nearest obstacle. Ties prefer standing still, then the board center.
func (a *Autopilot) Decide(s *Simulation) core.Action {
	g := s.Grid()
	fp := s.Player().Footprint()

	best := core.ActionNone
	bestRoom := -1
	bestCenter := 0
	for _, move := range []struct {
		action core.Action
		dx     int
	}{
		{core.ActionNone, 0},
		{core.ActionLeft, -1},
		{core.ActionRight, 1},
	} {
		left := fp.Left + move.dx
		if left < 0 || left+fp.Width() > g.Width() {
			continue
		}
		room := a.clearance(g, fp, left)
		center := -core.Abs(left + fp.Width()/2 - g.Width()/2)
		if room > bestRoom || (room == bestRoom && best != core.ActionNone && center > bestCenter) {
			best, bestRoom, bestCenter = move.action, room, center
		}
	}
	return best
}

// clearance returns the distance in rows to the nearest obstacle over the
// columns [left, left+width), capped at lookahead+1. A cell on the player's
// row that the player does not already cover counts as distance zero.
func (a *Autopilot) clearance(g *Grid, fp Footprint, left int) int {
	nearest := a.lookahead + 1
	covered := fp.Rect()
	for x := left; x < left+fp.Width(); x++ {
		if !covered.Contains(x, fp.Top) {
			if g.At(x, fp.Top) != Blank {
				return 0
			}
		}
		for d := 1; d <= a.lookahead && d < nearest; d++ {
			if g.At(x, fp.Top-d) != Blank {
				nearest = d
				break
			}
		}
	}
	return nearest
}
