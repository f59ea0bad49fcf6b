// Package preset provides a registry of named run configurations. Presets
// register themselves in init(), so the CLI can discover loadouts without
// hardcoded dependencies.
package preset

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/fortress-run/internal/config"
)

// Info contains metadata about a registered preset.
type Info struct {
	ID          string
	Description string
}

// Factory builds a fresh RunConfig for a preset. Factories must return a
// new value each call; callers mutate the result (seed overrides).
type Factory func() config.RunConfig

type entry struct {
	description string
	factory     Factory
}

var (
	presets = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a preset. Typically called from init(). Panics on duplicate
// ids.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := presets[id]; exists {
		panic(fmt.Sprintf("preset: %q already registered", id))
	}
	presets[id] = entry{description: description, factory: f}
}

// List returns all registered presets, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()
	result := make([]Info, 0, len(presets))
	for id, e := range presets {
		result = append(result, Info{ID: id, Description: e.description})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Create builds the RunConfig for a preset id.
func Create(id string) (config.RunConfig, error) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := presets[id]
	if !ok {
		return config.RunConfig{}, fmt.Errorf("preset: unknown preset %q", id)
	}
	return e.factory(), nil
}

// Exists checks whether a preset id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := presets[id]
	return ok
}
