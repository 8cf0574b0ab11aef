package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow - move up
	ActionDown         // S, Down arrow - move down
	ActionLeft         // A, Left arrow - move left
	ActionRight        // D, Right arrow - move right
	ActionPause        // P - pause/unpause
	ActionQuit         // Q, Esc, Ctrl+C - save and exit
	ActionAny          // Any other key (advances title/game over screens)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionAny:
		return "Any"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action is one of the four directions.
func (a Action) IsMovement() bool {
	return a >= ActionUp && a <= ActionRight
}

// opposite returns the movement action on the same axis pointing the other way.
func (a Action) opposite() Action {
	switch a {
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	}
	return ActionNone
}

// Direction holds the four movement flags for one tick.
// At most one flag of each opposing pair is set when built by DirectionLatch.
type Direction struct {
	Right bool
	Left  bool
	Up    bool
	Down  bool
}

// Any reports whether any flag is set.
func (d Direction) Any() bool {
	return d.Right || d.Left || d.Up || d.Down
}

// DirectionLatch converts discrete key presses into held direction flags.
//
// Terminals report key presses (repeated while a key is held) but never key
// releases, so a flag stays set for holdTicks ticks after its most recent
// press. Pressing a direction clears the opposite one immediately.
type DirectionLatch struct {
	holdTicks int
	held      map[Action]int // action -> tick of most recent press
}

// NewDirectionLatch creates a latch that keeps a direction held for
// holdTicks ticks after each press. holdTicks below 1 is treated as 1.
func NewDirectionLatch(holdTicks int) *DirectionLatch {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &DirectionLatch{
		holdTicks: holdTicks,
		held:      make(map[Action]int, 4),
	}
}

// Press records a movement press observed at the given tick.
// Non-movement actions are ignored.
func (l *DirectionLatch) Press(a Action, tick int) {
	if !a.IsMovement() {
		return
	}
	delete(l.held, a.opposite())
	l.held[a] = tick
}

// Direction returns the flags active at the given tick and forgets
// directions whose hold window has elapsed.
func (l *DirectionLatch) Direction(tick int) Direction {
	for a, pressed := range l.held {
		if tick-pressed >= l.holdTicks {
			delete(l.held, a)
		}
	}

	_, right := l.held[ActionRight]
	_, left := l.held[ActionLeft]
	_, up := l.held[ActionUp]
	_, down := l.held[ActionDown]
	return Direction{Right: right, Left: left, Up: up, Down: down}
}

// Reset releases all directions.
func (l *DirectionLatch) Reset() {
	clear(l.held)
}
