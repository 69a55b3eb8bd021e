package config

import (
	_ "embed"
)

//go:embed defaults/mergetris.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration. It mirrors
// defaults/mergetris.yaml and serves as the last-resort fallback if the
// embedded YAML fails to parse.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			LockDelay:      0.5,
			ComboWindow:    2.0,
			BaseInterval:   1.0,
			MinInterval:    0.05,
			LevelSpeedStep: 0.05,
			SoftDropFactor: 10,
		},
		Cascade: CascadeConfig{
			PassDelay: 0.1,
			MaxPasses: 100,
		},
		Scoring: ScoringConfig{
			ScorePerRow:     100,
			ScorePerLevel:   1000,
			LinesPerLevel:   10,
			MaxLevel:        20,
			HardDropPerCell: 2,
			SoftDropPerCell: 1,
			ComboEndBonus:   50,
			RowMultipliers:  []float64{1, 3, 5, 8},
		},
		Spawn: SpawnConfig{
			Weights: []SpawnWeight{
				{Value: 2, Weight: 3},
				{Value: 4, Weight: 2},
				{Value: 8, Weight: 1},
			},
		},
		PowerUps: PowerUpsConfig{
			Enabled:        true,
			SpawnChance:    0.1,
			EffectDuration: 5.0,
			SlowMultiplier: 0.5,
		},
		Difficulty: DifficultyConfig{
			StartLevel: 1,
		},
	}
}
