package game

import (
	"math/rand"

	"github.com/vovakirdan/hamster-dodge/internal/assets"
	"github.com/vovakirdan/hamster-dodge/internal/config"
	"github.com/vovakirdan/hamster-dodge/internal/core"
)

// Spawner creates a toy every SpawnInterval ticks at a random screen edge.
type Spawner struct {
	cfg     config.ToysConfig
	world   core.Rect
	rng     *rand.Rand
	palette []assets.ID
	counter int // Ticks since the last spawn
}

// NewSpawner creates a spawner drawing from rng. Toys pick their sprite
// uniformly from palette.
func NewSpawner(cfg config.ToysConfig, world core.Rect, rng *rand.Rand, palette []assets.ID) *Spawner {
	return &Spawner{
		cfg:     cfg,
		world:   world,
		rng:     rng,
		palette: palette,
	}
}

// Tick advances the spawn counter and appends a new toy to active when the
// interval is reached. Returns the (possibly grown) active set.
func (s *Spawner) Tick(active []Entity) []Entity {
	s.counter++
	if s.counter >= s.cfg.SpawnInterval {
		s.counter = 0
		active = append(active, s.Spawn())
	}
	return active
}

// Spawn creates one toy just outside a random edge of the world.
func (s *Spawner) Spawn() Entity {
	e := Entity{
		Size:  s.intBetween(s.cfg.MinSize, s.cfg.MaxSize),
		Speed: s.intBetween(s.cfg.MinSpeed, s.cfg.MaxSpeed),
	}
	if len(s.palette) > 0 {
		e.Asset = s.palette[s.rng.Intn(len(s.palette))]
	}

	margin := s.cfg.SpawnMargin
	if s.rng.Intn(2) == 0 {
		// Vertical: enter through the top or bottom edge
		e.X = s.world.X + s.intBetween(0, s.world.W-e.Size)
		if s.rng.Intn(2) == 0 {
			e.Edge = EdgeTop
			e.Y = s.world.Y - e.Size - margin
		} else {
			e.Edge = EdgeBottom
			e.Y = s.world.Bottom() + margin
		}
	} else {
		// Horizontal: enter through the left or right edge
		e.Y = s.world.Y + s.intBetween(0, s.world.H-e.Size)
		if s.rng.Intn(2) == 0 {
			e.Edge = EdgeLeft
			e.X = s.world.X - e.Size - margin
		} else {
			e.Edge = EdgeRight
			e.X = s.world.Right() + margin
		}
	}

	return e
}

// intBetween returns a uniform integer in [lo, hi].
func (s *Spawner) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
