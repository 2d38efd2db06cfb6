package capsule

import (
	"fmt"

	"github.com/vovakirdan/tui-capsule/internal/config"
	"github.com/vovakirdan/tui-capsule/internal/core"
	"github.com/vovakirdan/tui-capsule/internal/registry"
)

// Package-level options set by the CLI before the game is created.
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
	allowPills         *bool
	allowBlocks        *bool
)

// SetConfigPath sets the YAML config file to load on Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-20). 0 keeps the configured one.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetAllowPills overrides whether generated boards contain loose capsule halves.
func SetAllowPills(allow bool) {
	allowPills = &allow
}

// SetAllowBlocks overrides whether generated boards contain blocks.
func SetAllowBlocks(allow bool) {
	allowBlocks = &allow
}

// Game adapts a Session to the registry.Game interface.
type Game struct {
	mode    Mode
	session *Session
	cfg     config.CapsuleConfig
	seed    int64

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool

	// Messages produced by Reset, reported with the next Step.
	notes []string
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("capsule", func() registry.Game {
		return New()
	})
	registry.Register("capsule_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "capsule_endless"
	}
	return "capsule"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Capsule (Endless)"
	}
	return "Capsule"
}

// Reset loads the configuration and starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.notes = g.notes[:0]
	g.cfg = g.loadConfig()
	g.seed = cfg.Seed
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.tooSmall = g.screenW < g.requiredWidth() || g.screenH < g.requiredHeight()

	g.session = NewSession(g.cfg, g.mode, cfg.Seed)
	g.notes = append(g.notes, g.session.Events()...)
}

// loadConfig resolves the YAML config, the preset and the CLI overrides.
// A broken config file falls back to the defaults.
func (g *Game) loadConfig() config.CapsuleConfig {
	cfg, err := config.LoadCapsule(configPath)
	if err != nil {
		g.notes = append(g.notes, fmt.Sprintf("config: %v, using defaults", err))
		cfg = config.DefaultCapsuleConfig()
	}

	if difficultyPreset != "" {
		preset, err := config.ParsePreset(difficultyPreset)
		if err != nil {
			g.notes = append(g.notes, fmt.Sprintf("config: %v", err))
		} else {
			config.ApplyCapsulePreset(&cfg, preset)
		}
	}
	if selectedStartLevel > 0 {
		cfg.Difficulty.InitialLevel = selectedStartLevel
	}
	if allowPills != nil {
		cfg.Difficulty.AllowPills = *allowPills
	}
	if allowBlocks != nil {
		cfg.Difficulty.AllowBlocks = *allowBlocks
	}
	return cfg
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	var events []string
	if len(g.notes) > 0 {
		events = append(events, g.notes...)
		g.notes = g.notes[:0]
	}

	if input.Has(core.ActionRestart) && g.session.Finished() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.seed + 1,
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		events = append(events, g.notes...)
		g.notes = g.notes[:0]
		return core.StepResult{State: g.State(), Events: events}
	}

	if input.Has(core.ActionPause) && !g.session.Finished() {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall || g.session.Finished() {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.session.Step(input)
	events = append(events, g.session.Events()...)
	return core.StepResult{State: g.State(), Events: events}
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < g.requiredWidth() || h < g.requiredHeight()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		GameOver: g.session.Phase() == PhaseGameOver,
		Won:      g.session.Phase() == PhaseWon,
		Paused:   g.paused,
	}
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the configuration the current session was built from.
func (g *Game) Config() config.CapsuleConfig {
	return g.cfg
}
