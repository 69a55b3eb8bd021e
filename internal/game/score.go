package game

import (
	"math"

	"github.com/vovakirdan/tui-mergetris/internal/config"
	"github.com/vovakirdan/tui-mergetris/internal/core"
)

// rowMultiplierLen caps the simultaneous-rows multiplier lookup; four or
// more rows share the last entry.
const rowMultiplierLen = 4

// Accumulator owns score, level, lines and combo state. It is the only
// component that mutates scoring state; everything else reports into it.
// Time is measured in play ticks supplied by the game loop.
type Accumulator struct {
	cfg  config.ScoringConfig
	emit func(core.Event)

	score     int
	highScore int
	level     int
	lines     int // total lines cleared this game
	toNext    int // lines toward the next level

	combo         int
	lastMergeTick uint64
	comboWindow   int // ticks
}

// NewAccumulator creates an accumulator at level startLevel with zeroed
// score and combo. comboWindowTicks is the merge timeout in ticks.
func NewAccumulator(cfg config.ScoringConfig, startLevel, comboWindowTicks int, emit func(core.Event)) *Accumulator {
	if emit == nil {
		emit = func(core.Event) {}
	}
	return &Accumulator{
		cfg:         cfg,
		emit:        emit,
		level:       core.Clamp(startLevel, 1, cfg.MaxLevel),
		comboWindow: comboWindowTicks,
	}
}

// Score returns the current score.
func (a *Accumulator) Score() int { return a.score }

// HighScore returns the highest score observed, including the externally
// loaded all-time value.
func (a *Accumulator) HighScore() int { return a.highScore }

// SetHighScore seeds the all-time high score loaded by the persistence
// collaborator. Ignored if lower than the already observed maximum.
func (a *Accumulator) SetHighScore(v int) {
	if v > a.highScore {
		a.highScore = v
	}
}

// Level returns the current level in [1, MaxLevel].
func (a *Accumulator) Level() int { return a.level }

// Lines returns the total lines cleared this game.
func (a *Accumulator) Lines() int { return a.lines }

// Combo returns the current combo counter (0 = inactive).
func (a *Accumulator) Combo() int { return a.combo }

// AddScore adds points to the score and tracks the high score.
// Negative deltas are programming errors; score never decreases.
func (a *Accumulator) AddScore(points int) {
	if points < 0 {
		panic("game: score delta must be non-negative")
	}
	if points == 0 {
		return
	}
	a.score += points
	a.emit(core.Event{Kind: core.EventScoreChanged, Value: a.score})
	if a.score > a.highScore {
		a.highScore = a.score
		a.emit(core.Event{Kind: core.EventHighScoreChanged, Value: a.highScore})
	}
}

// RegisterMerge records one merge that produced newValue at the given
// tick: the combo counter increments, the merge timestamp updates, and
// the merge score round(newValue * (1 + combo*0.5)) is added. Returns the
// score delta.
func (a *Accumulator) RegisterMerge(newValue int, now uint64) int {
	a.combo++
	a.lastMergeTick = now
	delta := int(math.Round(float64(newValue) * (1 + float64(a.combo)*0.5)))
	a.emit(core.Event{Kind: core.EventMerge, Value: newValue, Combo: a.combo})
	a.AddScore(delta)
	return delta
}

// AddRowClearScore scores a row-clear report and advances the
// lines-toward-level counter, leveling up when it reaches LinesPerLevel.
func (a *Accumulator) AddRowClearScore(rowsCleared, combo int) {
	if rowsCleared <= 0 {
		return
	}

	mult := a.cfg.RowMultipliers[core.Min(rowsCleared, rowMultiplierLen)-1]
	rowScore := math.Round(float64(a.cfg.ScorePerRow) * float64(rowsCleared) * mult *
		(1 + float64(combo)*0.25) *
		(1 + float64(a.level-1)*0.1))
	a.AddScore(int(rowScore))

	a.lines += rowsCleared
	a.emit(core.Event{Kind: core.EventLinesChanged, Value: a.lines})

	a.toNext += rowsCleared
	for a.toNext >= a.cfg.LinesPerLevel && a.level < a.cfg.MaxLevel {
		a.toNext -= a.cfg.LinesPerLevel
		a.level++
		a.AddScore(a.cfg.ScorePerLevel)
		a.emit(core.Event{Kind: core.EventLevelChanged, Value: a.level})
	}
}

// TickCombo expires the combo when no merge has happened within the combo
// window. A combo greater than 1 pays combo*ComboEndBonus before
// resetting.
// Called once per play tick.
func (a *Accumulator) TickCombo(now uint64) {
	if a.combo == 0 {
		return
	}
	if now-a.lastMergeTick <= uint64(a.comboWindow) {
		return
	}
	final := a.combo
	bonus := 0
	if final > 1 {
		bonus = final * a.cfg.ComboEndBonus
		a.AddScore(bonus)
	}
	a.combo = 0
	a.emit(core.Event{Kind: core.EventComboEnded, Combo: final, Value: bonus})
}

// ResetCombo clears the combo without a bonus, used on explicit game
// reset.
func (a *Accumulator) ResetCombo() {
	a.combo = 0
}

// DropInterval returns the nominal seconds per downward step for the
// given level, before power-up modifiers:
// max(MinInterval, BaseInterval - (level-1)*LevelSpeedStep).
func DropInterval(t config.TimingConfig, level int) float64 {
	interval := t.BaseInterval - float64(level-1)*t.LevelSpeedStep
	return math.Max(t.MinInterval, interval)
}
