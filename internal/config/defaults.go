package config

import (
	_ "embed"
)

//go:embed defaults/capsule.yaml
var defaultCapsuleYAML []byte

// DefaultCapsuleConfig returns the default capsule game configuration.
func DefaultCapsuleConfig() CapsuleConfig {
	return CapsuleConfig{
		Board: CapsuleBoard{
			Width:  8,
			Height: 16,
		},
		Rules: CapsuleRules{
			MinRun:       4,
			MaxConnected: 3,
			InputBuffer:  4,
		},
		Timing: CapsuleTiming{
			DropEvery:     30,
			SoftDropEvery: 3,
			LockDelay:     15,
			GravityEvery:  4,
			ClearPause:    90,
		},
		Scoring: CapsuleScoring{
			EnemyPoints: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 1,
			AllowPills:   true,
			AllowBlocks:  false,
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
				MinDropEvery:    6,
			},
		},
	}
}
