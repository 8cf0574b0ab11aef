package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/hamster-dodge/internal/assets"
	"github.com/vovakirdan/hamster-dodge/internal/config"
	"github.com/vovakirdan/hamster-dodge/internal/core"
)

func newTestSpawner(seed int64) *Spawner {
	cfg := config.DefaultHamsterConfig()
	world := core.NewRect(0, 0, cfg.World.Width, cfg.World.Height)
	return NewSpawner(cfg.Toys, world, rand.New(rand.NewSource(seed)), assets.IDs())
}

func TestSpawnerCadence(t *testing.T) {
	s := newTestSpawner(1)
	var active []Entity

	for tick := 1; tick <= 100; tick++ {
		active = s.Tick(active)
		expected := tick / 20
		if len(active) != expected {
			t.Fatalf("tick %d: %d toys, expected %d", tick, len(active), expected)
		}
	}
}

func TestSpawnParametersInRange(t *testing.T) {
	cfg := config.DefaultHamsterConfig()
	s := newTestSpawner(7)
	seenEdges := make(map[SpawnEdge]bool)
	seenAssets := make(map[assets.ID]bool)

	for i := 0; i < 2000; i++ {
		e := s.Spawn()
		seenEdges[e.Edge] = true
		seenAssets[e.Asset] = true

		if e.Size < cfg.Toys.MinSize || e.Size > cfg.Toys.MaxSize {
			t.Fatalf("size %d outside [%d, %d]", e.Size, cfg.Toys.MinSize, cfg.Toys.MaxSize)
		}
		if e.Speed < cfg.Toys.MinSpeed || e.Speed > cfg.Toys.MaxSpeed {
			t.Fatalf("speed %d outside [%d, %d]", e.Speed, cfg.Toys.MinSpeed, cfg.Toys.MaxSpeed)
		}

		margin := cfg.Toys.SpawnMargin
		w, h := cfg.World.Width, cfg.World.Height
		switch e.Edge {
		case EdgeTop:
			if e.Y != -e.Size-margin {
				t.Fatalf("top toy at y=%d, expected %d", e.Y, -e.Size-margin)
			}
			if e.X < 0 || e.X+e.Size > w {
				t.Fatalf("top toy x=%d does not fit the width", e.X)
			}
		case EdgeBottom:
			if e.Y != h+margin {
				t.Fatalf("bottom toy at y=%d, expected %d", e.Y, h+margin)
			}
			if e.X < 0 || e.X+e.Size > w {
				t.Fatalf("bottom toy x=%d does not fit the width", e.X)
			}
		case EdgeLeft:
			if e.X != -e.Size-margin {
				t.Fatalf("left toy at x=%d, expected %d", e.X, -e.Size-margin)
			}
			if e.Y < 0 || e.Y+e.Size > h {
				t.Fatalf("left toy y=%d does not fit the height", e.Y)
			}
		case EdgeRight:
			if e.X != w+margin {
				t.Fatalf("right toy at x=%d, expected %d", e.X, w+margin)
			}
			if e.Y < 0 || e.Y+e.Size > h {
				t.Fatalf("right toy y=%d does not fit the height", e.Y)
			}
		}

		// Spawned toys start fully outside the visible area
		if e.Rect().Intersects(core.NewRect(0, 0, w, h)) {
			t.Fatalf("toy %+v spawned inside the world", e)
		}
	}

	if len(seenEdges) != 4 {
		t.Errorf("expected all four edges over many spawns, saw %v", seenEdges)
	}
	if len(seenAssets) != len(assets.IDs()) {
		t.Errorf("expected every toy sprite over many spawns, saw %d", len(seenAssets))
	}
}

func TestSpawnDeterministic(t *testing.T) {
	a := newTestSpawner(99)
	b := newTestSpawner(99)

	for i := 0; i < 50; i++ {
		ea, eb := a.Spawn(), b.Spawn()
		if ea != eb {
			t.Fatalf("spawn %d differs with the same seed: %+v vs %+v", i, ea, eb)
		}
	}
}

func TestSpawnWithoutPalette(t *testing.T) {
	cfg := config.DefaultHamsterConfig()
	world := core.NewRect(0, 0, cfg.World.Width, cfg.World.Height)
	s := NewSpawner(cfg.Toys, world, rand.New(rand.NewSource(1)), nil)

	if e := s.Spawn(); e.Asset != "" {
		t.Errorf("empty palette should yield an empty asset, got %q", e.Asset)
	}
}
