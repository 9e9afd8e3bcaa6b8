// rocks is a terminal arcade game: dodge the rocks falling from the sky.
//
// Usage:
//
//	rocks list               - List board variants
//	rocks play [variant]     - Play a round (default: rocks)
//	rocks menu               - Pick variant and difficulty interactively
//	rocks simulate           - Play rounds headlessly with a bot
//
// Global flags:
//
//	--fps <rate>    - Tick rate, 0 ticks as fast as possible (default: 60)
//	--seed <value>  - RNG seed for reproducible rounds
//	--log <path>    - Write logs to a file
//	--debug         - Log simulation events
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/falling-rocks/internal/rocks"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogPath string
	flagDebug   bool

	// Shared by play, menu and simulate
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rocks",
	Short: "Falling Rocks - dodge rocks in your terminal",
	Long: `Falling Rocks is a terminal arcade game. Steer left and right along the
bottom of the sky and dodge the rocks. They fall faster and more often the
longer you survive, and faster rocks are worth more points.

Available commands:
  list      - Show board variants
  play      - Play a variant directly
  menu      - Interactive variant and difficulty picker
  simulate  - Run rounds headlessly and report scores

Examples:
  rocks play
  rocks play rocks_wide --difficulty hard
  rocks menu --fps 0
  rocks simulate --rounds 50 --csv > runs.csv`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (0 = as fast as possible)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log simulation events")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
}

// openLogger creates the logger for a command. Logs go to the --log file
// when set, otherwise to fallback. The returned function closes the file.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rocks",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
