package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset; unknown strings map to the
// empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// easy slows the starting speed, hard starts several levels in, fixed
// disables the per-level speed-up entirely.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.StartLevel = 1
		cfg.Timing.BaseInterval = 1.2
		cfg.PowerUps.SpawnChance = 0.15
	case DifficultyNormal:
		cfg.Difficulty.StartLevel = 1
	case DifficultyHard:
		cfg.Difficulty.StartLevel = 5
		cfg.PowerUps.SpawnChance = 0.05
	case DifficultyFixed:
		cfg.Timing.LevelSpeedStep = 0
	}
}
