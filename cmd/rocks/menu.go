package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/falling-rocks/internal/config"
	"github.com/vovakirdan/falling-rocks/internal/platform/tui"
	"github.com/vovakirdan/falling-rocks/internal/registry"
	"github.com/vovakirdan/falling-rocks/internal/rocks"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and difficulty from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a board, left/right or h/l to change the
difficulty, and Enter to play. "standard" plays the config as written, the
same as play and simulate without --difficulty. After a round you return to the menu.
Tab shows the rounds played this session.

Examples:
  rocks menu
  rocks menu --difficulty easy
  rocks menu --fps 30`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselected difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
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

	cfg := terminalConfig()
	preset := config.ParsePreset(flagDifficulty)
	var session []tui.RoundRecord

	for {
		menuResult, err := tui.RunMenu(cfg, preset, len(session))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config
		preset = menuResult.Preset

		if menuResult.Quit {
			break
		}

		if menuResult.WantsResults {
			goBack, resErr := tui.RunResults(session, cfg.ScreenW, cfg.ScreenH)
			if resErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", resErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.GameID == "" {
			break
		}

		rocks.SetDifficultyPreset(string(preset))
		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		records, err := tui.Run(game, cfg, tui.Options{Logger: logger, Preset: string(preset)})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		session = append(session, records...)
	}
}
