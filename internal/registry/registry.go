// Package registry provides a global registry for world variants.
// Variants register themselves in init() functions, allowing the platforms
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tower/internal/assets"
	"github.com/vovakirdan/tower/internal/config"
	"github.com/vovakirdan/tower/internal/core"
)

// Game is the interface every playable world implements.
// Worlds contain pure logic with no external dependencies (especially no Bubble Tea
// or Ebiten). The platform handles input mapping, timing, and presentation.
type Game interface {
	// ID returns the variant identifier (e.g., "tower", "open").
	// Used for CLI commands and session storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset puts the world back to its starting layout.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Compose paints the current frame onto the logical canvas.
	Compose(dst *core.Canvas)

	// State returns the current world summary.
	State() core.GameState
}

// Env carries everything a factory needs to build a world.
type Env struct {
	Config config.Config
	Assets *assets.Bundle
	Logger *log.Logger
}

// Factory creates a world for an already configured Env.
type Factory func(id, title string, env Env) (Game, error)

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID    string
	Title string
}

type entry struct {
	title   string
	preset  func(*config.Config)
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a variant. preset adjusts a base config before the world is
// created and may be nil.
// Panics if a variant with the same ID is already registered.
func Register(id, title string, preset func(*config.Config), f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	entries[id] = entry{title: title, preset: preset, factory: f}
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, VariantInfo{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Configure returns base with the variant's preset applied.
func Configure(id string, base config.Config) (config.Config, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return base, fmt.Errorf("registry: unknown variant %q", id)
	}
	if e.preset != nil {
		e.preset(&base)
	}
	return base, nil
}

// Create instantiates a world by variant ID. env.Config should already carry
// the variant's preset, see Configure.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}
	if env.Logger == nil {
		env.Logger = log.Default()
	}
	return e.factory(id, e.title, env)
}

// Launch applies the variant preset and an optional tick rate override to
// base, validates the result and creates the world. It returns the config
// the world was built with.
func Launch(id string, base config.Config, fps int, bundle *assets.Bundle, logger *log.Logger) (Game, config.Config, error) {
	cfg, err := Configure(id, base)
	if err != nil {
		return nil, base, err
	}
	config.OverrideFPS(&cfg, fps)
	if err := cfg.Validate(); err != nil {
		return nil, cfg, err
	}
	g, err := Create(id, Env{Config: cfg, Assets: bundle, Logger: logger})
	if err != nil {
		return nil, cfg, err
	}
	return g, cfg, nil
}
