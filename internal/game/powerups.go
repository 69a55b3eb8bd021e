package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-mergetris/internal/core"
)

// PowerUpKind enumerates the board-mutation power-ups.
type PowerUpKind int

const (
	PowerClearRow  PowerUpKind = iota // destroy the lowest non-empty row
	PowerBomb                         // destroy a 3x3 neighborhood near the top
	PowerFreeze                       // timed: gravity suspended
	PowerSlowDown                     // timed: half drop speed, double duration
	PowerColorBomb                    // destroy every block of one random value
	PowerShuffle                      // redistribute values across occupied cells
	powerUpKindCount
)

// String returns a display name for the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerClearRow:
		return "ClearRow"
	case PowerBomb:
		return "Bomb"
	case PowerFreeze:
		return "Freeze"
	case PowerSlowDown:
		return "SlowDown"
	case PowerColorBomb:
		return "ColorBomb"
	case PowerShuffle:
		return "Shuffle"
	default:
		return "?"
	}
}

// Glyph returns the single-character HUD symbol for the kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerClearRow:
		return '▬'
	case PowerBomb:
		return '●'
	case PowerFreeze:
		return '❄'
	case PowerSlowDown:
		return '◐'
	case PowerColorBomb:
		return '◎'
	case PowerShuffle:
		return '⇄'
	default:
		return '?'
	}
}

// timed reports whether the kind is a duration effect rather than a
// one-shot board mutation.
func (k PowerUpKind) timed() bool {
	return k == PowerFreeze || k == PowerSlowDown
}

// ActiveEffect is a running timed power-up.
type ActiveEffect struct {
	Kind      PowerUpKind
	Remaining int // ticks
}

// PowerUpManager owns the FIFO queue of pending power-ups and the set of
// active timed effects. Board mutations go through the board store's
// public operations; the manager holds no cell state of its own.
type PowerUpManager struct {
	rng *rand.Rand

	spawnChance   float64 // per cleared row, rolled when rowsCleared >= 3
	durationTicks int     // base timed-effect duration
	slowMult      float64 // drop-interval divisor while SlowDown is active

	queue   []PowerUpKind
	effects []ActiveEffect
}

// NewPowerUpManager creates a manager. durationTicks is the base timed
// effect duration in ticks; SlowDown runs twice that.
func NewPowerUpManager(rng *rand.Rand, spawnChance float64, durationTicks int, slowMult float64) *PowerUpManager {
	return &PowerUpManager{
		rng:           rng,
		spawnChance:   spawnChance,
		durationTicks: durationTicks,
		slowMult:      slowMult,
	}
}

// QueueLen returns the number of pending power-ups.
func (pm *PowerUpManager) QueueLen() int { return len(pm.queue) }

// Queue returns a copy of the pending kinds in activation order.
func (pm *PowerUpManager) Queue() []PowerUpKind {
	out := make([]PowerUpKind, len(pm.queue))
	copy(out, pm.queue)
	return out
}

// Effects returns a copy of the active timed effects.
func (pm *PowerUpManager) Effects() []ActiveEffect {
	out := make([]ActiveEffect, len(pm.effects))
	copy(out, pm.effects)
	return out
}

// HasEffect reports whether a timed effect of the kind is active.
func (pm *PowerUpManager) HasEffect(kind PowerUpKind) bool {
	for _, e := range pm.effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// RollAfterRowClear evaluates the spawn trigger for a row-clear report.
// For rowsCleared >= 3 a power-up is enqueued with probability
// spawnChance * rowsCleared; the kind is uniform over all six.
func (pm *PowerUpManager) RollAfterRowClear(rowsCleared int) (PowerUpKind, bool) {
	if rowsCleared < 3 {
		return 0, false
	}
	if pm.rng.Float64() >= pm.spawnChance*float64(rowsCleared) {
		return 0, false
	}
	kind := PowerUpKind(pm.rng.Intn(int(powerUpKindCount)))
	pm.queue = append(pm.queue, kind)
	return kind, true
}

// Activate dequeues and applies the next pending power-up against the
// board. Returns the kind, whether anything was dequeued, and whether the
// board was mutated (mutations warrant a fresh resolution pass).
// An empty queue is an ordinary condition, not an error.
func (pm *PowerUpManager) Activate(b *Board) (kind PowerUpKind, ok, mutated bool) {
	if len(pm.queue) == 0 {
		return 0, false, false
	}
	kind = pm.queue[0]
	pm.queue = pm.queue[1:]

	if kind.timed() {
		dur := pm.durationTicks
		if kind == PowerSlowDown {
			dur *= 2
		}
		pm.startEffect(kind, dur)
		return kind, true, false
	}

	switch kind {
	case PowerClearRow:
		mutated = applyClearRow(b)
	case PowerBomb:
		mutated = applyBomb(b)
	case PowerColorBomb:
		mutated = applyColorBomb(b, pm.rng)
	case PowerShuffle:
		mutated = applyShuffle(b, pm.rng)
	}
	return kind, true, mutated
}

// startEffect adds a timed effect, refreshing the duration if the kind is
// already running.
func (pm *PowerUpManager) startEffect(kind PowerUpKind, ticks int) {
	for i := range pm.effects {
		if pm.effects[i].Kind == kind {
			pm.effects[i].Remaining = core.Max(pm.effects[i].Remaining, ticks)
			return
		}
	}
	pm.effects = append(pm.effects, ActiveEffect{Kind: kind, Remaining: ticks})
}

// TickEffects advances timed effects by one tick and drops the expired
// ones.
func (pm *PowerUpManager) TickEffects() {
	kept := pm.effects[:0]
	for _, e := range pm.effects {
		e.Remaining--
		if e.Remaining > 0 {
			kept = append(kept, e)
		}
	}
	pm.effects = kept
}

// ModifyInterval applies active timed effects to a nominal drop interval
// in seconds. Returns the adjusted interval and false while Freeze holds
// gravity entirely.
func (pm *PowerUpManager) ModifyInterval(interval float64) (float64, bool) {
	if pm.HasEffect(PowerFreeze) {
		return interval, false
	}
	if pm.HasEffect(PowerSlowDown) {
		// Applied as interval / multiplier: 0.5 halves the fall speed.
		interval /= pm.slowMult
	}
	return interval, true
}

// Reset drops the queue and all active effects.
func (pm *PowerUpManager) Reset() {
	pm.queue = nil
	pm.effects = nil
}

// applyClearRow destroys every block in the lowest non-empty row.
// Gravity is left to the follow-up resolution pass.
func applyClearRow(b *Board) bool {
	for y := 0; y < b.Height(); y++ {
		occupied := false
		for x := 0; x < b.Width(); x++ {
			if b.Get(x, y) != 0 {
				occupied = true
				break
			}
		}
		if !occupied {
			continue
		}
		for x := 0; x < b.Width(); x++ {
			b.Remove(x, y)
		}
		return true
	}
	return false
}

// applyBomb destroys the 3x3 neighborhood centered on the first occupied
// cell found scanning from the top row down, left to right.
func applyBomb(b *Board) bool {
	for y := b.Height() - 1; y >= 0; y-- {
		for x := 0; x < b.Width(); x++ {
			if b.Get(x, y) == 0 {
				continue
			}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					b.Remove(x+dx, y+dy)
				}
			}
			return true
		}
	}
	return false
}

// applyColorBomb picks one occupied cell uniformly at random and destroys
// every block sharing its value.
func applyColorBomb(b *Board, rng *rand.Rand) bool {
	var occupied []core.Point
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Get(x, y) != 0 {
				occupied = append(occupied, core.Point{X: x, Y: y})
			}
		}
	}
	if len(occupied) == 0 {
		return false
	}
	target := occupied[rng.Intn(len(occupied))]
	value := b.Get(target.X, target.Y)
	for _, c := range occupied {
		if b.Get(c.X, c.Y) == value {
			b.Remove(c.X, c.Y)
		}
	}
	return true
}

// applyShuffle redistributes the multiset of block values uniformly at
// random across the currently occupied positions. Occupancy is preserved;
// the value-position correlation is not.
func applyShuffle(b *Board, rng *rand.Rand) bool {
	var positions []core.Point
	var values []int
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if v := b.Get(x, y); v != 0 {
				positions = append(positions, core.Point{X: x, Y: y})
				values = append(values, v)
			}
		}
	}
	if len(positions) < 2 {
		return false
	}
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	for i, p := range positions {
		b.Remove(p.X, p.Y)
		if !b.Place(values[i], p.X, p.Y) {
			panic("game: shuffle lost a cell")
		}
	}
	return true
}
