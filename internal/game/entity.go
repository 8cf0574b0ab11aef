// Package game implements Hamster vs. Squeaky Toys: the hamster dodges toys
// that fly in from the edges of the screen. The package is pure simulation
// and terminal-agnostic drawing; the platform layer owns timing and input.
package game

import (
	"github.com/vovakirdan/hamster-dodge/internal/assets"
	"github.com/vovakirdan/hamster-dodge/internal/core"
)

// SpawnEdge is the screen boundary a toy enters from.
// It fixes the toy's direction of travel for its whole lifetime.
type SpawnEdge int

const (
	EdgeTop    SpawnEdge = iota // moves down
	EdgeBottom                  // moves up
	EdgeLeft                    // moves right
	EdgeRight                   // moves left
)

// String returns the edge name.
func (e SpawnEdge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// Entity is a squeaky toy in flight.
type Entity struct {
	X, Y  int       // Top-left corner in world units
	Size  int       // Width and height (toys are square)
	Speed int       // World units per tick, constant
	Edge  SpawnEdge // Entry edge; determines direction
	Asset assets.ID // Sprite handle, opaque to the simulation
}

// Rect returns the toy's collision rectangle.
func (e Entity) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.Size, e.Size)
}

// Velocity returns the per-tick displacement implied by the spawn edge.
func (e Entity) Velocity() (dx, dy int) {
	switch e.Edge {
	case EdgeTop:
		return 0, e.Speed
	case EdgeBottom:
		return 0, -e.Speed
	case EdgeLeft:
		return e.Speed, 0
	case EdgeRight:
		return -e.Speed, 0
	}
	return 0, 0
}

// Advance moves the toy one tick along its direction.
func (e *Entity) Advance() {
	dx, dy := e.Velocity()
	e.X += dx
	e.Y += dy
}

// Exited reports whether the toy has fully left the world through the edge
// opposite to the one it entered from.
func (e Entity) Exited(world core.Rect) bool {
	r := e.Rect()
	switch e.Edge {
	case EdgeTop:
		return r.Y >= world.Bottom()
	case EdgeBottom:
		return r.Bottom() <= world.Y
	case EdgeLeft:
		return r.X >= world.Right()
	case EdgeRight:
		return r.Right() <= world.X
	}
	return false
}
