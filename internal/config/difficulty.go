package config

import "math"

// Level bounds shared with board generation.
const (
	MinLevel = 1
	MaxLevel = 20
)

// DifficultyManager tracks level progression and derives the drop speed
// for a level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel int
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampLevel(cfg.InitialLevel),
	}
}

// SetInitialLevel overrides the starting level.
func (d *DifficultyManager) SetInitialLevel(level int) {
	d.initialLevel = clampLevel(level)
}

// InitialLevel returns the level a new game starts at.
func (d *DifficultyManager) InitialLevel() int {
	return d.initialLevel
}

// SetEnabled enables or disables level progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether clearing a level advances to the next one.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// NextLevel returns the level that follows a clear of current. done is
// true when current was the last level of a progressing game.
func (d *DifficultyManager) NextLevel(current int) (next int, done bool) {
	if !d.cfg.Enabled {
		return current, false
	}
	if current >= MaxLevel {
		return current, true
	}
	return current + 1, false
}

// Progress returns how far level sits between the first and last level,
// from 0.0 to 1.0.
func (d *DifficultyManager) Progress(level int) float64 {
	return float64(clampLevel(level)-MinLevel) / float64(MaxLevel-MinLevel)
}

// DropInterval returns the ticks between piece drops at the given level.
// The interval shrinks from base at level 1 to base/(1+speedMultiplier)
// at level 20, never going below the configured floor.
func (d *DifficultyManager) DropInterval(base, level int) int {
	speed := 1.0 + d.Progress(level)*d.cfg.Scaling.SpeedMultiplier
	interval := int(math.Round(float64(base) / speed))
	floor := max(d.cfg.Scaling.MinDropEvery, 1)
	return max(interval, floor)
}

func clampLevel(level int) int {
	return min(max(level, MinLevel), MaxLevel)
}
