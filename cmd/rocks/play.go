package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/falling-rocks/internal/config"
	"github.com/vovakirdan/falling-rocks/internal/core"
	"github.com/vovakirdan/falling-rocks/internal/platform/tui"
	"github.com/vovakirdan/falling-rocks/internal/registry"
	"github.com/vovakirdan/falling-rocks/internal/rocks"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a round",
	Long: `Start playing. The variant defaults to the classic 30x15 board.

Controls:
  Left/A/H    - Move left
  Right/D/L   - Move right
  P           - Pause
  R           - Restart (after game over)
  Esc/Q       - Quit

Difficulty options (default: the config as written, ramp from the start):
  easy   - Ramp starts from the beginning, 5 hearts
  normal - Ramp starts 30% along
  hard   - Ramp starts 70% along, 2 hearts
  fixed  - No ramp, stays at the config's initial level

Examples:
  rocks play
  rocks play rocks_wide
  rocks play --difficulty hard
  rocks play --config ./my-rocks.yaml --log rocks.log --debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	return rc
}

// checkDifficulty rejects unknown preset names.
func checkDifficulty() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "rocks"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'rocks list' to see available variants.")
		os.Exit(1)
	}
	if err := checkDifficulty(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rocks.SetConfigPath(flagConfig)
	rocks.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	records, err := tui.Run(game, terminalConfig(), tui.Options{
		Logger: logger,
		Preset: flagDifficulty,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	if len(records) > 0 {
		fmt.Printf("Your score is %d\n", records[len(records)-1].Score)
	}
}
