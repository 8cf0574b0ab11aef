package game

import "github.com/vovakirdan/hamster-dodge/internal/core"

// UpdateEntities advances every toy by one tick, in spawn order, and checks
// each against the player. It stops at the first toy that hits the player
// and returns true; toys after it are not advanced on that tick.
func UpdateEntities(active []Entity, player core.Rect) bool {
	for i := range active {
		active[i].Advance()
		if active[i].Rect().Intersects(player) {
			return true
		}
	}
	return false
}

// CullExited removes toys that have left the world through their exit edge,
// preserving the order of the rest. The slice is filtered in place.
func CullExited(active []Entity, world core.Rect) []Entity {
	kept := active[:0]
	for _, e := range active {
		if !e.Exited(world) {
			kept = append(kept, e)
		}
	}
	return kept
}
