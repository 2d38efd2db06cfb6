package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-capsule/internal/games/capsule"
	"github.com/vovakirdan/tui-capsule/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and level interactively",
	Long: `Opens the mode selector. Choose campaign, endless or a start level,
play, and return to the selector when the game is quit.`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagPills, "pills", true, "Generate loose capsule halves on the board")
	menuCmd.Flags().BoolVar(&flagBlocks, "blocks", false, "Generate blocks on the board")
}

func runMenu(cmd *cobra.Command, args []string) {
	logger, closeLog := mustLogger(io.Discard)
	defer closeLog()

	applyGameOptions(cmd)
	cfg := runtimeConfig()

	for {
		selection, updatedCfg, err := tui.RunCapsuleModeSelector(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeLog()
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		capsule.SetStartLevel(selection.Level)
		if err := playGame(selection.GameID(), cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			closeLog()
			os.Exit(1)
		}
	}
}
