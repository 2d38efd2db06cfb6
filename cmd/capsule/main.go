// capsule is a falling-capsule puzzle game for the terminal.
//
// Usage:
//
//	capsule list              - List available game modes
//	capsule play [game]       - Play a game mode (default: capsule)
//	capsule menu              - Pick mode and level interactively
//	capsule params            - Show board generation params for a level
//	capsule generate          - Print a generated board
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--config <path>    - Load a custom YAML config
//	--log-file <path>  - Write game events to a file
//	--verbose          - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-capsule/internal/games/capsule"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "capsule",
	Short: "Capsule - a falling-capsule puzzle in your terminal",
	Long: `Capsule is a terminal puzzle game. Drop two-colored capsules into the
well and line up four cells of one color to clear them. Clear every
enemy to finish the level.

Available commands:
  list      - Show the game modes
  play      - Play a mode directly
  menu      - Interactive mode and level picker
  params    - Show the board generation params for a level
  generate  - Print a generated board as text

Examples:
  capsule play
  capsule play capsule_endless --level 5
  capsule menu --log-file capsule.log
  capsule params --level 12
  capsule generate --level 20 --blocks --seed 7`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append log output to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(paramsCmd)
	rootCmd.AddCommand(generateCmd)
}

// newLogger builds the CLI logger. Output goes to --log-file when set,
// otherwise to fallback. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "capsule",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// mustLogger is newLogger for commands that exit on setup errors.
func mustLogger(fallback io.Writer) (*log.Logger, func()) {
	logger, closer, err := newLogger(fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closer
}
