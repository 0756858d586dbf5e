// Package registry holds the game factories. Games register themselves from
// init(), so the platform can list and build them by ID without importing
// each one by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/bdaygames/internal/core"
)

// Game is implemented by every arcade game. Games are pure logic: the
// platform owns input mapping, timing, rendering and persistence.
type Game interface {
	// ID is the stable identifier used by the CLI and score storage ("pinball").
	ID() string

	// Title is the display name ("Pinball").
	Title() string

	// Reset rebuilds the whole game from cfg. Called before the first Step
	// and again on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick of cfg.TickMillis() ms.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst, which is cleared beforehand.
	// Render must not mutate game state.
	Render(dst *core.Screen)

	// State returns the current summary.
	State() core.GameState
}

// AssetUser is implemented by games that draw sprites. The platform loads
// the named sprites before the session starts.
type AssetUser interface {
	Assets(player core.Character) []string
}

// BestScorer is implemented by games that keep a persisted best score.
type BestScorer interface {
	// BestScoreKey is the storage key of the best score.
	BestScoreKey() string
	// SetBestScore hands the stored value to the game for display.
	SetBestScore(best int)
}

// Configurable is implemented by games whose tuning can be replaced. path
// names a YAML file ("" keeps the search path) and preset a difficulty
// ("" keeps the file's setting).
type Configurable interface {
	Configure(path, preset string) error
}

// Configure applies path and preset to g when it supports configuration.
// It is a no-op when both are empty or g has no tuning.
func Configure(g Game, path, preset string) error {
	if path == "" && preset == "" {
		return nil
	}
	c, ok := g.(Configurable)
	if !ok {
		return nil
	}
	if err := c.Configure(path, preset); err != nil {
		return fmt.Errorf("registry: configure %s: %w", g.ID(), err)
	}
	return nil
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. It panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds a new instance of the game with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// AssetsFor lists the sprites g needs when played as player.
// Games that draw only primitives return nil.
func AssetsFor(g Game, player core.Character) []string {
	if au, ok := g.(AssetUser); ok {
		return au.Assets(player)
	}
	return nil
}
