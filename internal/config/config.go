// Package config provides YAML-based game configuration loading and
// difficulty presets for mergetris.
package config

// Config contains all tunable parameters of the simulation.
// Board dimensions are construction-time constants; nothing here is
// runtime-mutable once a game has been reset with it.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Cascade    CascadeConfig    `yaml:"cascade"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	PowerUps   PowerUpsConfig   `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines piece timing. All durations are seconds; the game
// converts them to ticks once per reset.
type TimingConfig struct {
	LockDelay      float64 `yaml:"lock_delay"`       // grace period before a grounded piece locks
	ComboWindow    float64 `yaml:"combo_window"`     // max gap between merges that keeps a combo alive
	BaseInterval   float64 `yaml:"base_interval"`    // seconds per row at level 1
	MinInterval    float64 `yaml:"min_interval"`     // floor of the speed curve
	LevelSpeedStep float64 `yaml:"level_speed_step"` // interval reduction per level
	SoftDropFactor float64 `yaml:"soft_drop_factor"` // interval divisor while soft drop is held
}

// CascadeConfig paces and bounds the merge resolution.
type CascadeConfig struct {
	PassDelay float64 `yaml:"pass_delay"` // seconds between visible merge passes
	MaxPasses int     `yaml:"max_passes"` // safety bound on resolution iterations
}

// ScoringConfig defines the scoring formula constants.
type ScoringConfig struct {
	ScorePerRow     int       `yaml:"score_per_row"`
	ScorePerLevel   int       `yaml:"score_per_level"`
	LinesPerLevel   int       `yaml:"lines_per_level"`
	MaxLevel        int       `yaml:"max_level"`
	HardDropPerCell int       `yaml:"hard_drop_per_cell"`
	SoftDropPerCell int       `yaml:"soft_drop_per_cell"`
	ComboEndBonus   int       `yaml:"combo_end_bonus"` // per combo step, paid when a combo > 1 times out
	RowMultipliers  []float64 `yaml:"row_multipliers"` // 1/2/3/4+ simultaneous rows
}

// SpawnWeight is one entry of the weighted tile-value spawn set.
type SpawnWeight struct {
	Value  int `yaml:"value"`
	Weight int `yaml:"weight"`
}

// SpawnConfig defines the weighted value set for newly spawned piece
// cells.
type SpawnConfig struct {
	Weights []SpawnWeight `yaml:"weights"`
}

// PowerUpsConfig defines the power-up trigger and effect parameters.
type PowerUpsConfig struct {
	Enabled        bool    `yaml:"enabled"`
	SpawnChance    float64 `yaml:"spawn_chance"`    // per cleared row, rolled for 3+ row clears
	EffectDuration float64 `yaml:"effect_duration"` // base timed-effect duration in seconds
	SlowMultiplier float64 `yaml:"slow_multiplier"` // interval divisor while SlowDown is active
}

// DifficultyConfig defines the starting state presets can adjust.
type DifficultyConfig struct {
	StartLevel int `yaml:"start_level"`
}

// SpawnValues splits the weighted set into parallel value and weight
// slices for the simulation's draw routine.
func (s SpawnConfig) SpawnValues() (values, weights []int) {
	values = make([]int, len(s.Weights))
	weights = make([]int, len(s.Weights))
	for i, w := range s.Weights {
		values[i] = w.Value
		weights[i] = w.Weight
	}
	return values, weights
}
