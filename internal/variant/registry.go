// Package variant provides a registry of playable snake variants.
// A variant is a named rule set; the platform discovers variants here
// instead of hardcoding them.
package variant

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/snake-tui/internal/config"
	"github.com/vovakirdan/snake-tui/internal/engine"
)

// Variant describes one registered rule set.
type Variant struct {
	ID    string
	Title string
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("variant: %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup returns the variant with the given ID.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("variant: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}

// Create loads the variant's configuration (honoring an optional custom
// config path) and builds an engine around the given random source.
func Create(id, configPath string, rng *rand.Rand) (*engine.Engine, error) {
	if _, err := Lookup(id); err != nil {
		return nil, err
	}
	cfg, err := config.Load(id, configPath)
	if err != nil {
		return nil, err
	}
	return engine.New(cfg, rng), nil
}

func init() {
	Register(Variant{ID: "classic", Title: "Snake (Classic)"})
	Register(Variant{ID: "arcade", Title: "Snake (Arcade)"})
}
