// Package config provides YAML-based game configuration loading and
// difficulty management for the capsule game.
package config

import "fmt"

// CapsuleConfig contains all configuration for the capsule game.
type CapsuleConfig struct {
	Board      CapsuleBoard     `yaml:"board"`
	Rules      CapsuleRules     `yaml:"rules"`
	Timing     CapsuleTiming    `yaml:"timing"`
	Scoring    CapsuleScoring   `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CapsuleBoard defines the playfield size in cells.
type CapsuleBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CapsuleRules defines matching and input rules.
type CapsuleRules struct {
	MinRun       int `yaml:"min_run"`       // Cells of one color needed to clear
	MaxConnected int `yaml:"max_connected"` // Longest same-color run a generated board may contain, 0 = unchecked
	InputBuffer  int `yaml:"input_buffer"`  // Actions held while the board settles
}

// CapsuleTiming defines step intervals, all in simulation ticks.
type CapsuleTiming struct {
	DropEvery     int `yaml:"drop_every"`      // Piece falls one row (level 1)
	SoftDropEvery int `yaml:"soft_drop_every"` // Piece falls one row while Down is held
	LockDelay     int `yaml:"lock_delay"`      // Grace period once the piece touches down
	GravityEvery  int `yaml:"gravity_every"`   // One settle step
	ClearPause    int `yaml:"clear_pause"`     // Pause after a level is cleared
}

// CapsuleScoring defines point values.
type CapsuleScoring struct {
	EnemyPoints int `yaml:"enemy_points"` // Per enemy, multiplied by the chain count
}

// DifficultyConfig defines starting level, board generation flags and
// level progression.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`       // Advance to the next level after a clear
	InitialLevel int           `yaml:"initial_level"` // 1 = easy, 20 = hard
	AllowPills   bool          `yaml:"allow_pills"`   // Generated boards may contain loose capsule halves
	AllowBlocks  bool          `yaml:"allow_blocks"`  // Generated boards may contain blocks
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines how drop speed grows with the level.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed at level 20, 1.0 = twice as fast
	MinDropEvery    int     `yaml:"min_drop_every"`   // Floor for the drop interval
}

// Validate reports the first inconsistent setting.
func (c CapsuleConfig) Validate() error {
	switch {
	case c.Board.Width < 4 || c.Board.Height < 4:
		return fmt.Errorf("config: board %dx%d is smaller than 4x4", c.Board.Width, c.Board.Height)
	case c.Rules.MinRun < 2:
		return fmt.Errorf("config: min_run %d must be at least 2", c.Rules.MinRun)
	case c.Rules.MaxConnected < 0:
		return fmt.Errorf("config: max_connected %d must not be negative", c.Rules.MaxConnected)
	case c.Rules.InputBuffer < 0:
		return fmt.Errorf("config: input_buffer %d must not be negative", c.Rules.InputBuffer)
	case c.Timing.DropEvery < 1 || c.Timing.SoftDropEvery < 1 || c.Timing.GravityEvery < 1:
		return fmt.Errorf("config: drop_every, soft_drop_every and gravity_every must be positive")
	case c.Timing.LockDelay < 0 || c.Timing.ClearPause < 0:
		return fmt.Errorf("config: lock_delay and clear_pause must not be negative")
	case c.Difficulty.InitialLevel < MinLevel || c.Difficulty.InitialLevel > MaxLevel:
		return fmt.Errorf("config: initial_level %d outside %d..%d", c.Difficulty.InitialLevel, MinLevel, MaxLevel)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the starting level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 10
	default:
		return MinLevel
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
