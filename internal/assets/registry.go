// Package assets provides a global registry of toy sprites.
// Sprites register themselves in init() functions; the simulation only ever
// stores a sprite ID, and the platform looks the sprite up when drawing.
package assets

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/hamster-dodge/internal/core"
)

// ID is an opaque handle for a toy sprite.
type ID string

// Sprite describes how a toy is drawn in the terminal.
type Sprite struct {
	ID    ID
	Name  string     // Human-readable name (e.g., "Banana")
	Glyph rune       // Fill character
	Color core.Color // Foreground color
}

var (
	sprites = make(map[ID]Sprite)
	mu      sync.RWMutex
)

// Register adds a sprite to the registry.
// Panics if a sprite with the same ID is already registered.
func Register(s Sprite) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := sprites[s.ID]; exists {
		panic(fmt.Sprintf("assets: sprite %q already registered", s.ID))
	}
	sprites[s.ID] = s
}

// Palette returns all registered sprites, sorted by ID.
func Palette() []Sprite {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Sprite, 0, len(sprites))
	for _, s := range sprites {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// IDs returns the IDs of all registered sprites, sorted.
func IDs() []ID {
	palette := Palette()
	ids := make([]ID, len(palette))
	for i, s := range palette {
		ids[i] = s.ID
	}
	return ids
}

// Lookup returns the sprite registered under id.
func Lookup(id ID) (Sprite, bool) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := sprites[id]
	return s, ok
}

// Fallback is drawn for IDs that are not registered.
var Fallback = Sprite{ID: "unknown", Name: "Toy", Glyph: '#', Color: core.ColorWhite}
