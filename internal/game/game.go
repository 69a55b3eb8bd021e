package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-mergetris/internal/config"
	"github.com/vovakirdan/tui-mergetris/internal/core"
	"github.com/vovakirdan/tui-mergetris/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeNormal Mode = "normal"
	ModeZen    Mode = "zen" // no power-ups, no level speed-up
)

// Package-level variables for CLI configuration, set before game creation.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by CLI name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// phase tracks the falling-piece state machine.
type phase int

const (
	phaseFalling phase = iota
	phaseLocking       // grounded; lock-delay timer running
	phaseCascade       // piece locked; merge resolution in progress
)

// Game ties the simulation components to a fixed-timestep tick. It owns
// the only mutation path into the board, piece, accumulator and power-up
// state; the platform drives it through Step and reads back snapshots.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	// playTick advances only while actively playing; all combo and merge
	// timestamps use it so pausing does not expire combos.
	playTick uint64

	cfg     config.Config
	runtime core.RuntimeConfig

	board    *Board
	piece    *Piece
	next     *Piece
	score    *Accumulator
	powerups *PowerUpManager
	resolver *Resolver

	spawnValues  []int
	spawnWeights []int

	state        phase
	gravityTimer int
	lockTimer    int
	softDrop     bool

	cascadeTimer  int
	cascadePasses int
	pendingSpawn  bool

	// durations converted from config seconds at reset
	lockDelayTicks int
	passDelayTicks int

	paused   bool
	gameOver bool
	tooSmall bool

	events []core.Event

	screenW int
	screenH int
}

// New creates a normal-mode game.
func New() *Game {
	return &Game{mode: ModeNormal}
}

// NewZen creates a zen-mode game: fixed speed, no power-ups.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

func init() {
	registry.Register("mergetris", func() registry.Game {
		return New()
	})
	registry.Register("mergetris_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "mergetris_zen"
	}
	return "mergetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Mergetris (Zen)"
	}
	return "Mergetris"
}

// ticksFor converts a duration in seconds to at least one tick.
func ticksFor(seconds float64, tickRate int) int {
	return core.Max(1, int(math.Round(seconds*float64(tickRate))))
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.runtime = rt

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.playTick = 0
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH

	g.board = NewBoard(cfg.Board.Width, cfg.Board.Height)
	g.score = NewAccumulator(cfg.Scoring, cfg.Difficulty.StartLevel,
		ticksFor(cfg.Timing.ComboWindow, rt.TickRate), g.emit)
	g.powerups = NewPowerUpManager(g.rng, cfg.PowerUps.SpawnChance,
		ticksFor(cfg.PowerUps.EffectDuration, rt.TickRate), cfg.PowerUps.SlowMultiplier)
	g.resolver = NewResolver(g.board, g.score, cfg.Cascade.MaxPasses)

	g.spawnValues, g.spawnWeights = cfg.Spawn.SpawnValues()

	g.lockDelayTicks = ticksFor(cfg.Timing.LockDelay, rt.TickRate)
	g.passDelayTicks = ticksFor(cfg.Cascade.PassDelay, rt.TickRate)

	g.piece = newPiece(g.rng, g.board, g.spawnValues, g.spawnWeights)
	g.next = newPiece(g.rng, g.board, g.spawnValues, g.spawnWeights)

	g.state = phaseFalling
	g.gravityTimer = g.dropTicks()
	g.lockTimer = 0
	g.softDrop = false
	g.cascadeTimer = 0
	g.cascadePasses = 0
	g.pendingSpawn = false
	g.paused = false
	g.gameOver = false
	g.events = nil

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board plus
// the side panel.
func (g *Game) checkScreenSize() {
	minW := g.board.Width()*cellWidth + 2 + panelWidth
	minH := g.board.Height() + 3
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// emit appends an outward notification for the current tick.
func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// dropTicks returns the current gravity interval in ticks, after the
// level curve, soft drop and timed power-up effects. Returns 0 while
// Freeze suspends gravity entirely.
func (g *Game) dropTicks() int {
	level := g.score.Level()
	if g.mode == ModeZen {
		level = 1
	}
	interval := DropInterval(g.cfg.Timing, level)
	if g.softDrop {
		interval /= g.cfg.Timing.SoftDropFactor
	}
	interval, ok := g.powerups.ModifyInterval(interval)
	if !ok {
		return 0
	}
	return ticksFor(interval, g.runtime.TickRate)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	g.tick++

	if in.Has(core.ActionPause) && !g.gameOver && !g.tooSmall {
		g.paused = !g.paused
	}

	if g.tooSmall {
		return g.result()
	}

	// An in-progress cascade runs to its fixed point even when paused or
	// after game over; only spawns and input wait for the playing state.
	if g.state == phaseCascade {
		g.stepCascade()
		return g.result()
	}

	if g.paused || g.gameOver {
		return g.result()
	}

	g.playTick++
	g.score.TickCombo(g.playTick)
	g.powerups.TickEffects()

	if g.pendingSpawn {
		g.spawnNext()
		return g.result()
	}

	g.handleInput(in)
	if g.gameOver || g.state == phaseCascade || g.piece == nil {
		// Hard drop or a power-up ended the falling phase this tick.
		return g.result()
	}

	g.stepGravity()
	return g.result()
}

// handleInput applies this tick's piece commands.
func (g *Game) handleInput(in core.InputFrame) {
	g.softDrop = in.Has(core.ActionSoftDrop)

	if in.Has(core.ActionLeft) {
		g.piece.Move(g.board, DirLeft)
	}
	if in.Has(core.ActionRight) {
		g.piece.Move(g.board, DirRight)
	}
	if in.Has(core.ActionRotate) {
		g.piece.RotateCW(g.board)
	}
	if in.Has(core.ActionPowerUp) {
		g.activatePowerUp()
		if g.state == phaseCascade {
			return
		}
	}
	if in.Has(core.ActionHardDrop) {
		dropped := g.piece.HardDrop(g.board)
		g.score.AddScore(dropped * g.cfg.Scoring.HardDropPerCell)
		g.lockPiece()
	}
}

// canFall reports whether the active piece has room below it.
func (g *Game) canFall() bool {
	return fits(g.board, g.piece.Shape, g.piece.Rotation, g.piece.Anchor.Add(0, -1))
}

// stepGravity drives the fall timer and the lock-delay state machine.
func (g *Game) stepGravity() {
	// A sideways move or rotation can take a grounded piece off its
	// support; it goes back to falling instead of locking in the air.
	if g.state == phaseLocking && g.canFall() {
		g.state = phaseFalling
		g.lockTimer = 0
	}

	interval := g.dropTicks()
	if interval == 0 {
		// Freeze: gravity suspended; a grounded piece still locks.
		if g.state == phaseLocking {
			g.tickLockDelay()
		}
		return
	}

	// Adapt the running timer when soft drop or effects shorten the
	// interval mid-countdown.
	if g.gravityTimer > interval {
		g.gravityTimer = interval
	}

	if g.state == phaseLocking {
		g.tickLockDelay()
		if g.state != phaseLocking {
			return // locked this tick
		}
	}

	g.gravityTimer--
	if g.gravityTimer > 0 {
		return
	}
	g.gravityTimer = interval

	if g.piece.Move(g.board, DirDown) {
		if g.softDrop {
			g.score.AddScore(g.cfg.Scoring.SoftDropPerCell)
		}
		if g.state == phaseLocking {
			// A successful downward move restarts the lock cycle.
			g.state = phaseFalling
			g.lockTimer = 0
		}
	} else if g.state == phaseFalling {
		g.state = phaseLocking
		g.lockTimer = 0
	}
}

// tickLockDelay advances the lock-delay timer and locks the piece when it
// reaches the configured threshold.
func (g *Game) tickLockDelay() {
	g.lockTimer++
	if g.lockTimer >= g.lockDelayTicks {
		g.lockPiece()
	}
}

// lockPiece writes the piece cells into the board store and starts the
// merge resolution. A lock into an occupied cell is an invariant
// violation, never an expected outcome.
func (g *Game) lockPiece() {
	cells := g.piece.Cells()
	for i, c := range cells {
		if !g.board.Place(g.piece.Values[i], c.X, c.Y) {
			panic("game: piece locked into occupied cell")
		}
	}
	g.piece = nil
	g.startCascade()
}

// startCascade begins a paced merge resolution. The first pass runs on
// the next tick.
func (g *Game) startCascade() {
	g.state = phaseCascade
	g.cascadePasses = 0
	g.cascadeTimer = 0
}

// stepCascade runs at most one merge+gravity pass per inter-pass delay.
func (g *Game) stepCascade() {
	if g.cascadeTimer > 0 {
		g.cascadeTimer--
		return
	}

	merges := g.resolver.Pass(g.playTick)
	if merges > 0 {
		g.cascadePasses++
		if g.cascadePasses >= g.resolver.MaxPasses() {
			// Recoverable configuration problem: stop resolving, still
			// clear rows once, and keep playing.
			g.emit(core.Event{Kind: core.EventCascadeCapHit, Value: g.cascadePasses})
			g.finishCascade()
			return
		}
		g.cascadeTimer = g.passDelayTicks
		return
	}
	g.finishCascade()
}

// finishCascade clears completed rows, reports them, evaluates the
// power-up trigger and either resumes the surviving piece or schedules
// the next spawn.
func (g *Game) finishCascade() {
	rows := g.board.ClearCompletedRows()
	if rows > 0 {
		combo := g.score.Combo()
		g.score.AddRowClearScore(rows, combo)
		g.emit(core.Event{Kind: core.EventRowsCleared, Value: rows, Combo: combo})

		if g.mode == ModeNormal && g.cfg.PowerUps.Enabled {
			if kind, ok := g.powerups.RollAfterRowClear(rows); ok {
				g.emit(core.Event{Kind: core.EventPowerUpQueued, Value: int(kind)})
			}
		}
	}

	if g.board.TopRowOccupied() {
		g.setGameOver()
		return
	}

	// A resolution triggered by a power-up mid-fall keeps the active
	// piece; only the post-lock flow spawns. Row shifts or gravity may
	// have dropped blocks into the piece's cells, so lift it until it
	// fits again.
	if g.piece != nil {
		for !fits(g.board, g.piece.Shape, g.piece.Rotation, g.piece.Anchor) {
			if g.piece.Anchor.Y >= g.board.Height()-1 {
				g.setGameOver()
				return
			}
			g.piece.Anchor.Y++
		}
		g.state = phaseFalling
		g.lockTimer = 0
		g.gravityTimer = g.dropTicks()
		return
	}

	g.state = phaseFalling
	g.pendingSpawn = true
}

// spawnNext promotes the lookahead piece to active and draws a fresh one.
func (g *Game) spawnNext() {
	g.pendingSpawn = false
	g.piece = g.next
	g.next = newPiece(g.rng, g.board, g.spawnValues, g.spawnWeights)

	if !fits(g.board, g.piece.Shape, g.piece.Rotation, g.piece.Anchor) {
		g.setGameOver()
		return
	}

	g.state = phaseFalling
	g.lockTimer = 0
	g.gravityTimer = g.dropTicks()
}

// activatePowerUp consumes the queue head, if any, and re-triggers the
// cascade after destructive mutations.
func (g *Game) activatePowerUp() {
	kind, ok, mutated := g.powerups.Activate(g.board)
	if !ok {
		return
	}
	g.emit(core.Event{Kind: core.EventPowerUpActivated, Value: int(kind)})
	if mutated {
		g.startCascade()
	}
}

func (g *Game) setGameOver() {
	g.gameOver = true
	g.piece = nil
	g.state = phaseFalling
	g.pendingSpawn = false
	g.emit(core.Event{Kind: core.EventGameOver, Value: g.score.Score()})
}

// result packages the tick outcome.
func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Level returns the current level.
func (g *Game) Level() int { return g.score.Level() }

// Lines returns total lines cleared.
func (g *Game) Lines() int { return g.score.Lines() }

// Combo returns the current combo counter.
func (g *Game) Combo() int { return g.score.Combo() }

// MaxTile returns the largest tile value on the board.
func (g *Game) MaxTile() int { return g.board.MaxValue() }

// HighScore returns the highest score observed.
func (g *Game) HighScore() int { return g.score.HighScore() }

// SetHighScore seeds the all-time high score loaded by the persistence
// collaborator.
func (g *Game) SetHighScore(v int) { g.score.SetHighScore(v) }

// BoardCells returns a read-only copy of the locked-block grid.
func (g *Game) BoardCells() [][]int { return g.board.Snapshot() }

// PowerUpQueue returns a copy of the pending power-up kinds.
func (g *Game) PowerUpQueue() []PowerUpKind { return g.powerups.Queue() }

// ActiveEffects returns a copy of the running timed effects.
func (g *Game) ActiveEffects() []ActiveEffect { return g.powerups.Effects() }
