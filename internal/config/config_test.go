package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultCapsuleConfig().Validate(); err != nil {
		t.Fatalf("DefaultCapsuleConfig().Validate() = %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML CapsuleConfig
	if err := yaml.Unmarshal(defaultCapsuleYAML, &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if want := DefaultCapsuleConfig(); !reflect.DeepEqual(fromYAML, want) {
		t.Errorf("embedded YAML = %+v, want %+v", fromYAML, want)
	}
}

func TestLoadCapsuleCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "capsule.yaml")
	data := "rules:\n  min_run: 3\ndifficulty:\n  initial_level: 12\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCapsule(path)
	if err != nil {
		t.Fatalf("LoadCapsule() error = %v", err)
	}
	if cfg.Rules.MinRun != 3 {
		t.Errorf("MinRun = %d, want 3", cfg.Rules.MinRun)
	}
	if cfg.Difficulty.InitialLevel != 12 {
		t.Errorf("InitialLevel = %d, want 12", cfg.Difficulty.InitialLevel)
	}
	if cfg.Board.Width != 8 || cfg.Timing.DropEvery != 30 {
		t.Errorf("unset keys should keep defaults, got board %+v timing %+v", cfg.Board, cfg.Timing)
	}
}

func TestLoadCapsuleErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(bad, []byte("rules: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(invalid, []byte("rules:\n  min_run: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing.yaml")},
		{"malformed", bad},
		{"fails validation", invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadCapsule(tt.path); err == nil {
				t.Errorf("LoadCapsule(%s) error = nil, want error", tt.name)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*CapsuleConfig)
	}{
		{"tiny board", func(c *CapsuleConfig) { c.Board.Width = 2 }},
		{"min run", func(c *CapsuleConfig) { c.Rules.MinRun = 1 }},
		{"negative buffer", func(c *CapsuleConfig) { c.Rules.InputBuffer = -1 }},
		{"zero drop", func(c *CapsuleConfig) { c.Timing.DropEvery = 0 }},
		{"negative lock", func(c *CapsuleConfig) { c.Timing.LockDelay = -2 }},
		{"level too high", func(c *CapsuleConfig) { c.Difficulty.InitialLevel = 21 }},
		{"level zero", func(c *CapsuleConfig) { c.Difficulty.InitialLevel = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCapsuleConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantLevel   int
		wantEnabled bool
	}{
		{DifficultyEasy, 1, true},
		{DifficultyNormal, 5, true},
		{DifficultyHard, 10, true},
		{DifficultyFixed, 1, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			parsed, err := ParsePreset(string(tt.preset))
			if err != nil || parsed != tt.preset {
				t.Fatalf("ParsePreset(%q) = %q, %v", tt.preset, parsed, err)
			}
			cfg := DefaultCapsuleConfig()
			ApplyCapsulePreset(&cfg, tt.preset)
			if cfg.Difficulty.InitialLevel != tt.wantLevel {
				t.Errorf("InitialLevel = %d, want %d", cfg.Difficulty.InitialLevel, tt.wantLevel)
			}
			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tt.wantEnabled)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config invalid: %v", err)
			}
		})
	}

	if _, err := ParsePreset("brutal"); err == nil {
		t.Error("ParsePreset(brutal) error = nil, want error")
	}
}

func TestDifficultyManagerProgression(t *testing.T) {
	dm := NewDifficultyManager(DefaultCapsuleConfig().Difficulty)

	if next, done := dm.NextLevel(4); next != 5 || done {
		t.Errorf("NextLevel(4) = %d, %v, want 5, false", next, done)
	}
	if next, done := dm.NextLevel(MaxLevel); next != MaxLevel || !done {
		t.Errorf("NextLevel(20) = %d, %v, want 20, true", next, done)
	}

	dm.SetEnabled(false)
	if next, done := dm.NextLevel(7); next != 7 || done {
		t.Errorf("fixed NextLevel(7) = %d, %v, want 7, false", next, done)
	}

	dm.SetInitialLevel(50)
	if dm.InitialLevel() != MaxLevel {
		t.Errorf("InitialLevel() = %d, want %d", dm.InitialLevel(), MaxLevel)
	}
}

func TestDifficultyManagerDropInterval(t *testing.T) {
	cfg := DefaultCapsuleConfig().Difficulty

	tests := []struct {
		name       string
		multiplier float64
		level      int
		want       int
	}{
		{"level one is base speed", 2.0, 1, 30},
		{"max level", 2.0, 20, 10},
		{"floor applies", 9.0, 20, 6},
		{"no scaling", 0, 20, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg.Scaling.SpeedMultiplier = tt.multiplier
			dm := NewDifficultyManager(cfg)
			if got := dm.DropInterval(30, tt.level); got != tt.want {
				t.Errorf("DropInterval(30, %d) = %d, want %d", tt.level, got, tt.want)
			}
		})
	}
}
