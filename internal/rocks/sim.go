package rocks

import (
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/falling-rocks/internal/config"
	"github.com/vovakirdan/falling-rocks/internal/core"
)

// Stats counts what happened during a round.
type Stats struct {
	Spawned    int // regular obstacles started
	Deferred   int // spawn attempts refused by the pool
	Seekers    int
	Despawned  int
	Collisions int // player overlaps, including debounced ones
	Hits       int // overlaps that cost health
}

// Simulation is the state of one round: the grid, the obstacle pool, the
// seeker, the player and the bookkeeping timestamps. It is driven by Step
// from a single goroutine.
type Simulation struct {
	cfg      config.RocksConfig
	sched    *config.Scheduler
	rng      *rand.Rand
	grid     *Grid
	pool     *Pool
	seeker   Obstacle
	player   *Player
	cooldown time.Duration

	health          int
	score           int
	hurt            bool // whether lastHurt is set
	lastHurt        time.Duration
	lastSpawn       time.Duration
	lastFrame       time.Duration
	lastSeekerScore int

	exitRequested bool
	over          bool
	quit          bool

	events []core.Event
	stats  Stats
}

// NewSimulation creates a round from a validated configuration.
func NewSimulation(cfg config.RocksConfig, rng *rand.Rand) *Simulation {
	s := &Simulation{
		cfg:      cfg,
		sched:    config.NewScheduler(cfg),
		rng:      rng,
		grid:     NewGrid(cfg.Board.Width, cfg.Board.Height-1),
		pool:     NewPool(cfg.Obstacles.Capacity),
		player:   NewPlayer(cfg.Player.Glyphs, cfg.Board.Width, cfg.Board.Height),
		cooldown: time.Duration(cfg.Player.HurtCooldownMs) * time.Millisecond,
		health:   cfg.Player.Health,
		events:   make([]core.Event, 0, 8),
	}
	s.seeker.slot = -1
	return s
}

// Step runs one tick at frame time now with the single command polled for
// this tick. Order within a tick: input, spawn decisions, obstacle advance
// and commit, player commit (collision), health check.
//
// The grid is cleared at the start of the step, so after Step returns it
// holds this tick's frame for rendering.
func (s *Simulation) Step(now time.Duration, cmd core.Action) core.StepResult {
	s.events = s.events[:0]
	if s.over {
		return s.result(now)
	}
	if s.exitRequested {
		s.end(now, true)
		return s.result(now)
	}

	s.grid.Clear()

	switch cmd {
	case core.ActionLeft:
		s.player.MoveLeft()
	case core.ActionRight:
		s.player.MoveRight()
	case core.ActionQuit:
		s.exitRequested = true
	}

	elapsed := now - s.lastFrame
	if elapsed < 0 {
		elapsed = 0
	}

	if s.sched.ShouldSpawn(now, s.lastSpawn, s.lastFrame) {
		s.spawnRock(now)
		s.lastSpawn = now
	}
	if s.sched.ShouldSpawnSeeker(s.score, s.lastSeekerScore, s.lastFrame) {
		s.lastSeekerScore = s.score
		s.spawnSeeker(now)
	}

	s.pool.AdvanceAll(elapsed, s.grid, func(o *Obstacle) { s.credit(now, o) })
	if s.seeker.Alive() {
		if s.seeker.Advance(elapsed, s.grid.Height()-1) {
			s.credit(now, &s.seeker)
		} else {
			s.seeker.Commit(s.grid)
		}
	}
	s.lastFrame = now

	if s.player.Commit(s.grid) {
		s.collide(now)
	}

	if s.health < 1 {
		s.end(now, false)
	}
	return s.result(now)
}

// spawnRock attempts a regular obstacle of random width at a random column.
func (s *Simulation) spawnRock(now time.Duration) {
	minW, maxW := s.cfg.Obstacles.MinWidth, s.cfg.Obstacles.MaxWidth
	width := minW
	if maxW > minW {
		width = minW + s.rng.Intn(maxW-minW+1)
	}
	// left in [0, boardWidth-1-width]
	left := s.rng.Intn(s.grid.Width() - width)
	glyphs := strings.Repeat(s.cfg.Obstacles.Glyph, width)

	slot, ok := s.pool.TrySpawn(glyphs, left, s.sched.FallRate(now))
	if !ok {
		s.stats.Deferred++
		return
	}
	s.stats.Spawned++
	s.emit(core.EventSpawn, now, slot, left, width)
}

// spawnSeeker drops the seeker above the player's middle column, replacing
// a seeker that is still falling.
func (s *Simulation) spawnSeeker(now time.Duration) {
	col := s.player.Center()
	s.seeker.spawn(s.cfg.Seeker.Glyph, col, s.sched.SeekerFallRate(now))
	s.stats.Seekers++
	s.emit(core.EventSeeker, now, -1, col, s.score)
}

// credit awards the despawn reward. Every obstacle that leaves the board
// scores, whether or not the player dodged it.
func (s *Simulation) credit(now time.Duration, o *Obstacle) {
	points := s.cfg.Scoring.Reward(o.Rate())
	s.score += points
	s.stats.Despawned++
	s.emit(core.EventDespawn, now, o.Slot(), o.Footprint().Left, points)
}

// collide applies a player overlap. Health drops at most once per cooldown
// window; the first hit of a round always counts.
func (s *Simulation) collide(now time.Duration) {
	s.stats.Collisions++
	if s.hurt && now <= s.lastHurt+s.cooldown {
		return
	}
	s.hurt = true
	s.lastHurt = now
	s.health--
	s.stats.Hits++
	s.emit(core.EventHit, now, -1, s.player.Left(), s.health)
}

func (s *Simulation) end(now time.Duration, quit bool) {
	s.over = true
	s.quit = quit
	s.emit(core.EventRoundOver, now, -1, s.player.Left(), s.score)
}

func (s *Simulation) emit(kind core.EventKind, at time.Duration, slot, column, value int) {
	s.events = append(s.events, core.Event{Kind: kind, At: at, Slot: slot, Column: column, Value: value})
}

func (s *Simulation) result(now time.Duration) core.StepResult {
	elapsed := s.lastFrame
	if !s.over {
		elapsed = now
	}
	return core.StepResult{
		State: core.GameState{
			Score:    s.score,
			Health:   s.health,
			Elapsed:  elapsed,
			GameOver: s.over,
			Quit:     s.quit,
		},
		Events: s.events,
	}
}

// Grid returns the frame buffer of the last step.
func (s *Simulation) Grid() *Grid {
	return s.grid
}

// Player returns the player element.
func (s *Simulation) Player() *Player {
	return s.player
}

// Pool returns the regular obstacle pool.
func (s *Simulation) Pool() *Pool {
	return s.pool
}

// Seeker returns the seeker obstacle, which may be dead.
func (s *Simulation) Seeker() *Obstacle {
	return &s.seeker
}

// Scheduler returns the difficulty scheduler in use.
func (s *Simulation) Scheduler() *config.Scheduler {
	return s.sched
}

// Health returns remaining health.
func (s *Simulation) Health() int {
	return s.health
}

// Score returns the current score.
func (s *Simulation) Score() int {
	return s.score
}

// LastHurt returns the time of the last health-costing hit and whether
// there has been one.
func (s *Simulation) LastHurt() (time.Duration, bool) {
	return s.lastHurt, s.hurt
}

// Over reports whether the round has ended.
func (s *Simulation) Over() bool {
	return s.over
}

// Stats returns the round counters.
func (s *Simulation) Stats() Stats {
	return s.stats
}
