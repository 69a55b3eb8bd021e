package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.mergetris/config.yaml ->
// ./configs/mergetris.yaml -> embedded default.
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/mergetris.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mergetris", filename)
}

// normalize fills gaps a partial user config may leave, so the simulation
// never sees zero-valued formula constants.
func normalize(cfg Config) Config {
	def := Default()

	if cfg.Board.Width <= 0 {
		cfg.Board.Width = def.Board.Width
	}
	if cfg.Board.Height <= 0 {
		cfg.Board.Height = def.Board.Height
	}
	if cfg.Timing.LockDelay <= 0 {
		cfg.Timing.LockDelay = def.Timing.LockDelay
	}
	if cfg.Timing.ComboWindow <= 0 {
		cfg.Timing.ComboWindow = def.Timing.ComboWindow
	}
	if cfg.Timing.BaseInterval <= 0 {
		cfg.Timing.BaseInterval = def.Timing.BaseInterval
	}
	if cfg.Timing.MinInterval <= 0 {
		cfg.Timing.MinInterval = def.Timing.MinInterval
	}
	if cfg.Timing.SoftDropFactor <= 0 {
		cfg.Timing.SoftDropFactor = def.Timing.SoftDropFactor
	}
	if cfg.Cascade.PassDelay <= 0 {
		cfg.Cascade.PassDelay = def.Cascade.PassDelay
	}
	if cfg.Cascade.MaxPasses <= 0 {
		cfg.Cascade.MaxPasses = def.Cascade.MaxPasses
	}
	if cfg.Scoring.ScorePerRow <= 0 {
		cfg.Scoring.ScorePerRow = def.Scoring.ScorePerRow
	}
	if cfg.Scoring.LinesPerLevel <= 0 {
		cfg.Scoring.LinesPerLevel = def.Scoring.LinesPerLevel
	}
	if cfg.Scoring.MaxLevel <= 0 {
		cfg.Scoring.MaxLevel = def.Scoring.MaxLevel
	}
	if len(cfg.Scoring.RowMultipliers) < 4 {
		cfg.Scoring.RowMultipliers = def.Scoring.RowMultipliers
	}
	if len(cfg.Spawn.Weights) == 0 {
		cfg.Spawn.Weights = def.Spawn.Weights
	}
	if cfg.PowerUps.SlowMultiplier <= 0 {
		cfg.PowerUps.SlowMultiplier = def.PowerUps.SlowMultiplier
	}
	if cfg.PowerUps.EffectDuration <= 0 {
		cfg.PowerUps.EffectDuration = def.PowerUps.EffectDuration
	}
	if cfg.Difficulty.StartLevel <= 0 {
		cfg.Difficulty.StartLevel = def.Difficulty.StartLevel
	}
	return cfg
}
