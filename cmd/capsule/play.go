package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-capsule/internal/config"
	"github.com/vovakirdan/tui-capsule/internal/core"
	"github.com/vovakirdan/tui-capsule/internal/games/capsule"
	"github.com/vovakirdan/tui-capsule/internal/platform/tui"
	"github.com/vovakirdan/tui-capsule/internal/registry"
)

var (
	flagDifficulty string
	flagLevel      int
	flagPills      bool
	flagBlocks     bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game mode",
	Long: `Start playing the specified mode, "capsule" (campaign) by default.

Controls:
  Left/Right, A/D  - Move
  Up/X, Z          - Rotate clockwise, counterclockwise
  Down/S           - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart (after the game ends)
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at level 1, longer lock delay
  normal - Start at level 5
  hard   - Start at level 10, blocks on the board, faster drops
  fixed  - No progression, clearing the start level wins

Examples:
  capsule play
  capsule play capsule_endless
  capsule play --difficulty hard
  capsule play --level 12 --blocks
  capsule play --config ./my-capsule.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (1-20, 0 = from config or preset)")
	playCmd.Flags().BoolVar(&flagPills, "pills", true, "Generate loose capsule halves on the board")
	playCmd.Flags().BoolVar(&flagBlocks, "blocks", false, "Generate blocks on the board")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "capsule"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'capsule list' to see available modes.")
		os.Exit(1)
	}
	if flagLevel != 0 && (flagLevel < config.MinLevel || flagLevel > config.MaxLevel) {
		fmt.Fprintf(os.Stderr, "Error: level must be between %d and %d\n", config.MinLevel, config.MaxLevel)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	applyGameOptions(cmd)
	if flagLevel > 0 {
		capsule.SetStartLevel(flagLevel)
	}

	// The alternate screen owns the terminal, so events only go to --log-file.
	logger, closeLog := mustLogger(io.Discard)
	defer closeLog()

	if err := playGame(gameID, runtimeConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// applyGameOptions forwards the config and board flags to the game package.
// Board flags only override the config file when given explicitly.
func applyGameOptions(cmd *cobra.Command) {
	capsule.SetConfigPath(flagConfig)
	capsule.SetDifficultyPreset(flagDifficulty)
	if cmd.Flags().Changed("pills") {
		capsule.SetAllowPills(flagPills)
	}
	if cmd.Flags().Changed("blocks") {
		capsule.SetAllowBlocks(flagBlocks)
	}
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func playGame(gameID string, cfg core.RuntimeConfig, logger *log.Logger) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	logger.Debug("starting game", "id", gameID, "config", flagConfig, "difficulty", flagDifficulty)
	return tui.Run(game, logger, cfg)
}
