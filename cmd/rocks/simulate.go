package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/falling-rocks/internal/config"
	"github.com/vovakirdan/falling-rocks/internal/headless"
)

var (
	flagRounds   int
	flagDuration time.Duration
	flagStep     time.Duration
	flagJitter   float64
	flagCSV      bool
	flagBot      string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play rounds headlessly and report scores",
	Long: `Run rounds without a terminal. A simulated clock advances by --step per
tick, jittered by up to --jitter of the step, and a bot picks one move per
tick. A round ends when health runs out or after --duration of game time.

Bots:
  dodge - steps toward the columns with the most room above them
  idle  - never moves

Examples:
  rocks simulate
  rocks simulate --rounds 100 --bot idle
  rocks simulate --difficulty hard --csv > hard.csv
  rocks simulate --step 5ms --jitter 0.9 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	defaults := headless.DefaultOptions()
	simulateCmd.Flags().IntVar(&flagRounds, "rounds", defaults.Rounds, "Number of rounds")
	simulateCmd.Flags().DurationVar(&flagDuration, "duration", defaults.Duration, "Game time after which a round counts as survived")
	simulateCmd.Flags().DurationVar(&flagStep, "step", defaults.Step, "Mean simulated time per tick")
	simulateCmd.Flags().Float64Var(&flagJitter, "jitter", defaults.Jitter, "Tick length variation as a fraction of --step")
	simulateCmd.Flags().BoolVar(&flagCSV, "csv", false, "Write per-round results as CSV")
	simulateCmd.Flags().StringVar(&flagBot, "bot", string(defaults.Bot), "Bot: dodge or idle")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if err := checkDifficulty(); err != nil {
		return err
	}
	bot, err := headless.ParseBot(flagBot)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadRocks(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := headless.DefaultOptions()
	opts.Rounds = flagRounds
	opts.Duration = flagDuration
	opts.Step = flagStep
	opts.Jitter = flagJitter
	opts.Seed = seed
	opts.Bot = bot
	opts.Logger = logger

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("simulating", "rounds", opts.Rounds, "bot", opts.Bot, "seed", seed,
		"difficulty", flagDifficulty, "step", opts.Step)

	results, runErr := headless.Run(ctx, cfg, opts)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	if errors.Is(runErr, context.Canceled) {
		logger.Warn("interrupted", "finished", len(results))
	}
	if len(results) == 0 {
		return nil
	}

	out := cmd.OutOrStdout()
	if flagCSV {
		return headless.WriteCSV(out, results)
	}
	return headless.WriteTable(out, results, headless.Summarize(results))
}
