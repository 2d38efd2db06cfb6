package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCapsule loads the capsule game configuration.
// Search order: customPath -> ~/.arcade/configs/capsule.yaml -> ./configs/capsule.yaml -> embedded default
//
// Files are unmarshalled over the defaults, so a file only needs the keys
// it changes.
func LoadCapsule(customPath string) (CapsuleConfig, error) {
	cfg := DefaultCapsuleConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("capsule.yaml"), filepath.Join("configs", "capsule.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultCapsuleConfig()
	if err := yaml.Unmarshal(defaultCapsuleYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultCapsuleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are
// skipped.
func tryLoad(path string) (CapsuleConfig, bool) {
	cfg := DefaultCapsuleConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyCapsulePreset modifies the config based on a difficulty preset.
func ApplyCapsulePreset(cfg *CapsuleConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Timing.LockDelay = 30
		cfg.Difficulty.Scaling.SpeedMultiplier = 1.0
	case DifficultyHard:
		cfg.Timing.LockDelay = 8
		cfg.Difficulty.AllowBlocks = true
		cfg.Difficulty.Scaling.SpeedMultiplier = 3.0
	}
}
