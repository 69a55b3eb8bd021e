// Package registry provides a global registry for game mode factories.
// Modes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-mergetris/internal/core"
)

// Game is the interface every playable mode implements. Implementations
// contain pure logic with no external dependencies (especially no Bubble
// Tea); the platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier (e.g., "mergetris"), used for CLI
	// commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state. Called once at start
	// and again when restarting after game over. The RuntimeConfig
	// provides screen dimensions, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick and returns the
	// resulting state plus outward notifications.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen
	// buffer. The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Info contains metadata about a registered mode.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game mode.
type Factory func() Game

type entry struct {
	factory Factory
	info    Info
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode factory to the registry. Typically called from an
// init() function. Panics if the ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	g := f()
	entries[id] = entry{factory: f, info: Info{ID: id, Title: g.Title()}}
}

// List returns information about all registered modes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
