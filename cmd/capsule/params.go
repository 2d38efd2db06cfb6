package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-capsule/internal/config"
	"github.com/vovakirdan/tui-capsule/internal/games/capsule/board"
)

var (
	flagGenLevel  int
	flagGenPills  bool
	flagGenBlocks bool
	flagGenSettle bool
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Show board generation params for a level",
	Long: `Prints the per-row entity caps and spawn chances used to populate a
board at the given level. Rows are listed bottom first; rows at or above
the cutoff are never populated.`,
	Args: cobra.NoArgs,
	Run:  runParams,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a generated board",
	Long: `Populates a board for the given level and prints it as text, one
two-character token per cell:

  ..  empty           R@  enemy (color letter, then marker)
  R#  block           Ro  loose capsule half
  R>  capsule half pointing at its partner (^ > v <)

Use --seed for a reproducible board.`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	for _, cmd := range []*cobra.Command{paramsCmd, generateCmd} {
		cmd.Flags().IntVar(&flagGenLevel, "level", config.MinLevel, "Level (1-20)")
		cmd.Flags().BoolVar(&flagGenPills, "pills", true, "Allow loose capsule halves")
		cmd.Flags().BoolVar(&flagGenBlocks, "blocks", false, "Allow blocks")
	}
	generateCmd.Flags().BoolVar(&flagGenSettle, "settle", false, "Apply gravity and clear runs before printing")
}

// boardConfig loads the config for the board size and rules.
func boardConfig() config.CapsuleConfig {
	cfg, err := config.LoadCapsule(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func derive(cfg config.CapsuleConfig) board.Params {
	params := board.DeriveParamsSized(cfg.Board.Width, cfg.Board.Height,
		flagGenLevel, flagGenPills, flagGenBlocks)
	params.MaxConnected = cfg.Rules.MaxConnected
	return params
}

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableIdleStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("241"))
)

func runParams(cmd *cobra.Command, args []string) {
	cfg := boardConfig()
	params := derive(cfg)

	fmt.Printf("Level %d on a %dx%d board: populated rows 0-%d, max connected %d\n\n",
		params.Level, cfg.Board.Width, cfg.Board.Height, params.CutoffRow-1, params.MaxConnected)

	rows := make([][]string, 0, params.CutoffRow)
	for row := range params.CutoffRow {
		rows = append(rows, []string{
			strconv.Itoa(row),
			strconv.Itoa(params.MaxEntities[row]),
			percent(params.EnemyChance[row]),
			percent(params.PillChance[row]),
			percent(params.BlockChance[row]),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Row", "Max", "Enemy", "Pill", "Block").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case row >= 0 && row < len(rows) && rows[row][col] == "-":
				return tableIdleStyle
			default:
				return tableCellStyle
			}
		})
	fmt.Println(t)
}

func percent(v int) string {
	if v == 0 {
		return "-"
	}
	return strconv.Itoa(v) + "%"
}

func runGenerate(cmd *cobra.Command, args []string) {
	logger, closeLog := mustLogger(os.Stderr)
	defer closeLog()

	cfg := boardConfig()
	params := derive(cfg)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := board.NewGrid(cfg.Board.Width, cfg.Board.Height)
	if err := g.ResetAndPopulate(params, rng); err != nil {
		logger.Error("board generation failed", "error", err)
		closeLog()
		os.Exit(1)
	}
	logger.Info("board generated",
		"level", params.Level,
		"seed", seed,
		"enemies", g.EnemyCount(),
		"cutoff", params.CutoffRow,
	)

	if flagGenSettle {
		res := g.Settle(cfg.Rules.MinRun)
		logger.Info("board settled",
			"steps", res.Steps,
			"moved", res.Moved,
			"broken", res.Broken,
			"chains", res.Chains,
			"enemies", g.EnemyCount(),
		)
	}

	fmt.Print(board.RenderASCII(g, nil))
}
