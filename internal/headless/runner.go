// Package headless plays rounds of falling rocks without a terminal.
// A manual clock drives the simulation with jittered timesteps and a bot
// picks one command per tick.
package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/falling-rocks/internal/config"
	"github.com/vovakirdan/falling-rocks/internal/core"
	"github.com/vovakirdan/falling-rocks/internal/rocks"
)

// Bot names the strategy that steers the player.
type Bot string

const (
	BotDodge Bot = "dodge"
	BotIdle  Bot = "idle"
)

// ParseBot converts a CLI value to a Bot.
func ParseBot(s string) (Bot, error) {
	switch Bot(s) {
	case BotDodge, BotIdle:
		return Bot(s), nil
	}
	return "", fmt.Errorf("headless: unknown bot %q (want dodge or idle)", s)
}

// Options configures a batch of rounds.
type Options struct {
	Rounds    int
	Duration  time.Duration // game time after which a round counts as survived
	Step      time.Duration // mean clock advance per tick
	Jitter    float64       // fraction of Step each tick may deviate by
	Seed      int64         // round i uses Seed+i
	Bot       Bot
	Lookahead int
	Logger    *log.Logger
}

// DefaultOptions returns the options used by the simulate command.
func DefaultOptions() Options {
	return Options{
		Rounds:    10,
		Duration:  2 * time.Minute,
		Step:      16 * time.Millisecond,
		Jitter:    0.5,
		Seed:      1,
		Bot:       BotDodge,
		Lookahead: 6,
	}
}

func (o Options) validate() error {
	var errs []error
	if o.Rounds < 1 {
		errs = append(errs, fmt.Errorf("rounds must be at least 1, got %d", o.Rounds))
	}
	if o.Step <= 0 {
		errs = append(errs, fmt.Errorf("step must be positive, got %v", o.Step))
	}
	if o.Duration <= 0 {
		errs = append(errs, fmt.Errorf("duration must be positive, got %v", o.Duration))
	}
	if o.Jitter < 0 || o.Jitter >= 1 {
		errs = append(errs, fmt.Errorf("jitter must be in [0, 1), got %v", o.Jitter))
	}
	return errors.Join(errs...)
}

// RoundResult is the outcome of one headless round.
type RoundResult struct {
	Round      int   `csv:"round"`
	Seed       int64 `csv:"seed"`
	Score      int   `csv:"score"`
	SurvivedMs int64 `csv:"survived_ms"`
	Survived   bool  `csv:"survived"`
	Ticks      int   `csv:"ticks"`
	Spawned    int   `csv:"spawned"`
	Deferred   int   `csv:"deferred"`
	Despawned  int   `csv:"despawned"`
	Seekers    int   `csv:"seekers"`
	Collisions int   `csv:"collisions"`
	Hits       int   `csv:"hits"`
	HealthLeft int   `csv:"health_left"`
}

// Run plays opts.Rounds rounds one after another. When ctx is cancelled it
// returns the rounds finished so far together with the context error.
func Run(ctx context.Context, cfg config.RocksConfig, opts Options) ([]RoundResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("headless: %w", err)
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("headless: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	results := make([]RoundResult, 0, opts.Rounds)
	for i := 0; i < opts.Rounds; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := playRound(ctx, cfg, opts, i)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		logger.Info("round finished", "round", res.Round, "score", res.Score,
			"survived", time.Duration(res.SurvivedMs)*time.Millisecond, "hits", res.Hits)
	}
	return results, nil
}

// playRound runs a single round until health runs out or the duration
// is reached.
func playRound(ctx context.Context, cfg config.RocksConfig, opts Options, round int) (RoundResult, error) {
	seed := opts.Seed + int64(round)
	sim := rocks.NewSimulation(cfg, rand.New(rand.NewSource(seed)))
	jitter := rand.New(rand.NewSource(seed ^ 0x5eed))
	pilot := rocks.NewAutopilot(opts.Lookahead)

	var (
		clock core.ManualClock
		state core.GameState
		cmd   core.Action
		ticks int
	)
	for {
		if ticks%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return RoundResult{}, err
			}
		}

		now := clock.Now()
		state = sim.Step(now, cmd).State
		ticks++
		if state.GameOver || now >= opts.Duration {
			break
		}

		cmd = core.ActionNone
		if opts.Bot == BotDodge {
			cmd = pilot.Decide(sim)
		}
		clock.Advance(nextStep(jitter, opts.Step, opts.Jitter))
	}

	stats := sim.Stats()
	return RoundResult{
		Round:      round + 1,
		Seed:       seed,
		Score:      state.Score,
		SurvivedMs: state.Elapsed.Milliseconds(),
		Survived:   !state.GameOver,
		Ticks:      ticks,
		Spawned:    stats.Spawned,
		Deferred:   stats.Deferred,
		Despawned:  stats.Despawned,
		Seekers:    stats.Seekers,
		Collisions: stats.Collisions,
		Hits:       stats.Hits,
		HealthLeft: state.Health,
	}, nil
}

// nextStep returns step scaled by a random factor in [1-jitter, 1+jitter],
// never less than a millisecond.
func nextStep(rng *rand.Rand, step time.Duration, jitter float64) time.Duration {
	factor := 1 + jitter*(2*rng.Float64()-1)
	d := time.Duration(float64(step) * factor)
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}
