package game

import (
	"testing"

	"github.com/vovakirdan/hamster-dodge/internal/config"
	"github.com/vovakirdan/hamster-dodge/internal/core"
)

// quietConfig returns a tuning where no toy ever spawns.
func quietConfig() config.HamsterConfig {
	cfg := config.DefaultHamsterConfig()
	cfg.Toys.SpawnInterval = 1_000_000
	return cfg
}

// hitToy returns a toy that overlaps the hamster after one tick.
func hitToy(player core.Rect) Entity {
	return Entity{X: player.X + 10, Y: player.Y - 5, Size: 100, Speed: 10, Edge: EdgeTop}
}

func TestNewSessionInitialState(t *testing.T) {
	s := NewSession(config.DefaultHamsterConfig(), 1)
	st := s.State()

	if st.Score != 0 || st.Ticks != 0 {
		t.Errorf("expected score and ticks 0, got %d/%d", st.Score, st.Ticks)
	}
	if st.Lives != 1 {
		t.Errorf("expected 1 life, got %d", st.Lives)
	}
	if st.Phase != PhasePlaying {
		t.Errorf("expected playing phase, got %s", st.Phase)
	}
	if len(s.Toys()) != 0 {
		t.Errorf("expected no toys, got %d", len(s.Toys()))
	}
	if p := s.Player(); p != core.NewRect(500, 360, 200, 180) {
		t.Errorf("hamster should start centered, got %+v", p)
	}
}

func TestScoreIncrementsEveryTick(t *testing.T) {
	s := NewSession(quietConfig(), 1)

	for i := 1; i <= 50; i++ {
		res := s.Step(core.Direction{})
		if res.State.Score != i {
			t.Fatalf("tick %d: score = %d", i, res.State.Score)
		}
	}
}

func TestExtraLifeGrantedOnce(t *testing.T) {
	s := NewSession(quietConfig(), 1)

	for i := 1; i < 300; i++ {
		res := s.Step(core.Direction{})
		if res.Event != EventNone {
			t.Fatalf("tick %d: unexpected event %d", i, res.Event)
		}
		if res.State.Lives != 1 {
			t.Fatalf("tick %d: lives = %d before the threshold", i, res.State.Lives)
		}
	}

	res := s.Step(core.Direction{})
	if res.Event != EventExtraLife {
		t.Errorf("expected extra life event at score 300, got %d", res.Event)
	}
	if res.State.Lives != 2 || !res.State.BonusEarned {
		t.Errorf("expected 2 lives with bonus, got %+v", res.State)
	}

	for i := 0; i < 500; i++ {
		s.Step(core.Direction{})
	}
	if s.State().Lives != 2 {
		t.Errorf("bonus must be granted only once, lives = %d", s.State().Lives)
	}
}

func TestCollisionOnLastLifeEndsRound(t *testing.T) {
	s := NewSession(quietConfig(), 1)
	for i := 0; i < 10; i++ {
		s.Step(core.Direction{})
	}
	s.toys = append(s.toys, hitToy(s.player))

	res := s.Step(core.Direction{})
	if res.Event != EventRoundOver {
		t.Fatalf("expected round over, got event %d", res.Event)
	}
	if !s.Over() || res.State.Lives != 0 {
		t.Errorf("expected terminal state with 0 lives, got %+v", res.State)
	}
	if res.State.Score != 11 {
		t.Errorf("expected final score 11, got %d", res.State.Score)
	}

	// Frozen afterwards
	for i := 0; i < 5; i++ {
		later := s.Step(core.Direction{Right: true})
		if later.State != res.State || later.Event != EventNone {
			t.Fatalf("round over must be a no-op, got %+v", later)
		}
	}
}

func TestCollisionWithSpareLifeResetsField(t *testing.T) {
	s := NewSession(quietConfig(), 1)
	s.lives = 2
	// Move away from the center first
	for i := 0; i < 5; i++ {
		s.Step(core.Direction{Left: true})
	}
	moved := s.Player()
	s.toys = append(s.toys,
		hitToy(moved),
		Entity{X: 0, Y: -200, Size: 100, Speed: 10, Edge: EdgeTop},
	)

	res := s.Step(core.Direction{Left: true})
	if res.Event != EventLifeLost {
		t.Fatalf("expected life lost, got event %d", res.Event)
	}
	if res.State.Lives != 1 || res.State.Phase != PhaseLifeLost {
		t.Errorf("expected 1 life in life-lost phase, got %+v", res.State)
	}
	if len(s.Toys()) != 0 {
		t.Errorf("active set must be cleared, got %d toys", len(s.Toys()))
	}
	if p := s.Player(); p != core.NewRect(500, 360, 200, 180) {
		t.Errorf("hamster must be recentered, got %+v", p)
	}

	res = s.Step(core.Direction{})
	if res.State.Phase != PhasePlaying {
		t.Errorf("next step should resume play, got %s", res.State.Phase)
	}
	if res.State.Score != 7 {
		t.Errorf("score keeps counting across a lost life, got %d", res.State.Score)
	}
}

func TestNoExtraLifeOnCollisionTick(t *testing.T) {
	s := NewSession(quietConfig(), 1)
	s.lives = 2
	s.score = 299
	s.toys = append(s.toys, hitToy(s.player))

	res := s.Step(core.Direction{})
	if res.Event != EventLifeLost {
		t.Fatalf("expected life lost, got event %d", res.Event)
	}
	if res.State.Lives != 1 || res.State.BonusEarned {
		t.Errorf("collision tick must not grant the bonus, got %+v", res.State)
	}
}

func TestHamsterMovesOnlyAfterCleanTick(t *testing.T) {
	s := NewSession(quietConfig(), 1)
	start := s.Player()

	s.Step(core.Direction{Up: true})
	if got := s.Player(); got.Y != start.Y-11 {
		t.Errorf("expected hamster to move up by 11, got y = %d", got.Y)
	}
}

func TestSessionDeterministic(t *testing.T) {
	cfg := config.DefaultHamsterConfig()
	a := NewSession(cfg, 2024)
	b := NewSession(cfg, 2024)
	dirs := []core.Direction{{Right: true}, {Up: true}, {}, {Left: true, Down: true}}

	for i := 0; i < 600; i++ {
		d := dirs[i%len(dirs)]
		ra, rb := a.Step(d), b.Step(d)
		if ra != rb {
			t.Fatalf("tick %d: results differ with the same seed: %+v vs %+v", i, ra, rb)
		}
		if len(a.Toys()) != len(b.Toys()) {
			t.Fatalf("tick %d: toy count differs", i)
		}
		if a.Over() {
			break
		}
	}
}

func TestToysAccumulateWithoutCulling(t *testing.T) {
	s := NewSession(config.DefaultHamsterConfig(), 5)

	// The fastest toy cannot reach the centered hamster within 21 ticks of flight
	for i := 0; i < 40; i++ {
		res := s.Step(core.Direction{})
		if res.Event != EventNone {
			t.Fatalf("tick %d: unexpected event %d", i+1, res.Event)
		}
	}
	if len(s.Toys()) != 2 {
		t.Errorf("expected 2 toys after 40 ticks, got %d", len(s.Toys()))
	}
}
