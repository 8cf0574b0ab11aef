package game

import (
	"math/rand"

	"github.com/vovakirdan/hamster-dodge/internal/assets"
	"github.com/vovakirdan/hamster-dodge/internal/config"
	"github.com/vovakirdan/hamster-dodge/internal/core"
)

// Phase is the round state.
type Phase int

const (
	PhasePlaying   Phase = iota
	PhaseLifeLost        // Transient: toys cleared, hamster recentered, waiting for the pause to end
	PhaseRoundOver       // Terminal: no lives left
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLifeLost:
		return "life-lost"
	case PhaseRoundOver:
		return "round-over"
	default:
		return "unknown"
	}
}

// Event reports what happened during a tick.
type Event int

const (
	EventNone      Event = iota
	EventExtraLife       // Score reached the bonus threshold
	EventLifeLost        // A toy hit the hamster and a life remains
	EventRoundOver       // A toy hit the hamster on the last life
)

// State is a snapshot of the round for the HUD and the platform.
type State struct {
	Score       int
	Lives       int
	Ticks       int
	Phase       Phase
	BonusEarned bool // The extra life was granted this round
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	Event Event
	State State
}

// GameSession owns all state of one round: the hamster, the active toys,
// score and lives. It is driven one tick at a time by the platform.
type GameSession struct {
	cfg     config.HamsterConfig
	world   core.Rect
	spawner *Spawner
	player  core.Rect
	toys    []Entity
	score   int
	lives   int
	ticks   int
	phase   Phase
	bonus   bool
}

// NewSession starts a round with the given tuning. The seed makes spawning
// deterministic.
func NewSession(cfg config.HamsterConfig, seed int64) *GameSession {
	world := core.NewRect(0, 0, cfg.World.Width, cfg.World.Height)
	rng := rand.New(rand.NewSource(seed))

	s := &GameSession{
		cfg:     cfg,
		world:   world,
		spawner: NewSpawner(cfg.Toys, world, rng, assets.IDs()),
		player:  core.NewRect(0, 0, cfg.Player.Width, cfg.Player.Height).CenteredIn(world),
		toys:    make([]Entity, 0, 32),
		lives:   cfg.Round.StartingLives,
		phase:   PhasePlaying,
	}
	return s
}

// Step advances the round by one tick using the given movement flags.
//
// Tick order: score, spawn, move toys and test collisions, then either handle
// the hit or check the bonus life and move the hamster.
func (s *GameSession) Step(dir core.Direction) StepResult {
	switch s.phase {
	case PhaseRoundOver:
		return StepResult{State: s.State()}
	case PhaseLifeLost:
		s.phase = PhasePlaying
	}

	s.ticks++
	s.score++

	s.toys = s.spawner.Tick(s.toys)

	if UpdateEntities(s.toys, s.player) {
		s.lives--
		if s.lives <= 0 {
			s.lives = 0
			s.phase = PhaseRoundOver
			return StepResult{Event: EventRoundOver, State: s.State()}
		}
		s.loseLife()
		return StepResult{Event: EventLifeLost, State: s.State()}
	}

	if s.cfg.Toys.CullOffscreen {
		s.toys = CullExited(s.toys, s.world)
	}

	event := EventNone
	// Exact match: the bonus is granted once, on the tick the score hits the threshold
	if s.score == s.cfg.Round.ExtraLifeScore {
		s.lives++
		s.bonus = true
		event = EventExtraLife
	}

	s.player = MovePlayer(s.player, dir, s.cfg.Player.MoveSpeed, s.world)

	return StepResult{Event: event, State: s.State()}
}

// loseLife clears the field and recenters the hamster.
func (s *GameSession) loseLife() {
	s.toys = s.toys[:0]
	s.player = s.player.CenteredIn(s.world)
	s.phase = PhaseLifeLost
}

// State returns the current round snapshot.
func (s *GameSession) State() State {
	return State{
		Score:       s.score,
		Lives:       s.lives,
		Ticks:       s.ticks,
		Phase:       s.phase,
		BonusEarned: s.bonus,
	}
}

// Over reports whether the round has ended.
func (s *GameSession) Over() bool {
	return s.phase == PhaseRoundOver
}

// Player returns the hamster's bounding box.
func (s *GameSession) Player() core.Rect {
	return s.player
}

// Toys returns the active toys in spawn order. The slice must not be modified.
func (s *GameSession) Toys() []Entity {
	return s.toys
}

// World returns the visible area in world units.
func (s *GameSession) World() core.Rect {
	return s.world
}

// Config returns the tuning the session was created with.
func (s *GameSession) Config() config.HamsterConfig {
	return s.cfg
}
