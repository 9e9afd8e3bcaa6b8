package config

import (
	"math"
	"time"
)

// Scheduler maps elapsed play time to spawn interval, fall rates and seeker
// cadence. It holds no mutable state; callers keep the "last spawn" and
// "last seeker score" bookkeeping.
type Scheduler struct {
	spawn  SpawnConfig
	fall   FallConfig
	seeker SeekerConfig
	diff   DifficultyConfig
	offset float64 // head start in ms from the initial level
}

// NewScheduler creates a scheduler for the given configuration.
func NewScheduler(cfg RocksConfig) *Scheduler {
	return &Scheduler{
		spawn:  cfg.Spawn,
		fall:   cfg.Fall,
		seeker: cfg.Seeker,
		diff:   cfg.Difficulty,
		offset: clampF(cfg.Difficulty.InitialLevel, 0, 1) * cfg.Difficulty.MaxAtMs,
	}
}

// IsEnabled returns whether the ramp advances with time.
func (s *Scheduler) IsEnabled() bool {
	return s.diff.Enabled
}

// effective converts play time to ramp time in ms.
// A disabled ramp stays frozen at the initial level.
func (s *Scheduler) effective(t time.Duration) float64 {
	if !s.diff.Enabled {
		return s.offset
	}
	return s.offset + ms(t)
}

// Level returns how far along the ramp t is, from 0.0 to 1.0.
func (s *Scheduler) Level(t time.Duration) float64 {
	if s.diff.MaxAtMs <= 0 {
		return 1
	}
	return clampF(s.effective(t)/s.diff.MaxAtMs, 0, 1)
}

// SpawnInterval returns the minimum gap between regular spawn attempts.
// It never goes below zero, at which point a spawn is attempted every tick.
func (s *Scheduler) SpawnInterval(t time.Duration) time.Duration {
	interval := s.spawn.BaseIntervalMs - s.effective(t)*s.spawn.Ramp
	if interval < 0 {
		interval = 0
	}
	return fromMs(interval)
}

// ShouldSpawn reports whether a regular spawn attempt is due at now.
// The interval is evaluated at the previous frame's time.
func (s *Scheduler) ShouldSpawn(now, lastSpawn, lastFrame time.Duration) bool {
	return now > lastSpawn+s.SpawnInterval(lastFrame)
}

// FallRate returns the regular obstacle fall rate in ms per row.
// Lower is faster; the reduction saturates at MaxReduction.
func (s *Scheduler) FallRate(t time.Duration) float64 {
	return s.fall.BaseRate - math.Min(s.fall.MaxReduction, s.effective(t)*s.fall.Ramp)
}

// SeekerFallRate returns the seeker fall rate in ms per row.
func (s *Scheduler) SeekerFallRate(t time.Duration) float64 {
	return s.seeker.BaseRate - math.Min(s.seeker.MaxReduction, s.effective(t)*s.seeker.Ramp)
}

// SeekerThreshold returns the score delta a seeker spawn requires,
// evaluated at the previous frame's time.
func (s *Scheduler) SeekerThreshold(lastFrame time.Duration) float64 {
	return s.seeker.ScoreGap + s.effective(lastFrame)/s.seeker.GapDivisor
}

// ShouldSpawnSeeker reports whether the score has moved far enough since the
// last seeker for a new one.
func (s *Scheduler) ShouldSpawnSeeker(score, lastSeekerScore int, lastFrame time.Duration) bool {
	if !s.seeker.Enabled {
		return false
	}
	return float64(score-lastSeekerScore) > s.SeekerThreshold(lastFrame)
}

// Reward returns the points for an obstacle with the given fall rate leaving
// the board. Faster obstacles (lower rate) are worth more. Rates slow enough
// to price below zero earn nothing, so the score never decreases.
func (c ScoringConfig) Reward(rate float64) int {
	points := int(math.Round((c.Base - c.RateFactor*rate) / c.Divisor))
	if points < 0 {
		return 0
	}
	return points
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func fromMs(v float64) time.Duration {
	return time.Duration(math.Round(v * float64(time.Millisecond)))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
