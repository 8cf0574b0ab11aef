package game

import "github.com/vovakirdan/hamster-dodge/internal/core"

// MovePlayer applies one tick of directional input to the player box.
// Each flag moves the box by speed along its axis only when the result stays
// inside world; a move that would cross the edge is skipped.
func MovePlayer(player core.Rect, dir core.Direction, speed int, world core.Rect) core.Rect {
	if dir.Right {
		player = tryMove(player, speed, 0, world)
	}
	if dir.Left {
		player = tryMove(player, -speed, 0, world)
	}
	if dir.Up {
		player = tryMove(player, 0, -speed, world)
	}
	if dir.Down {
		player = tryMove(player, 0, speed, world)
	}
	return player
}

func tryMove(player core.Rect, dx, dy int, world core.Rect) core.Rect {
	if moved := player.Translate(dx, dy); moved.Inside(world) {
		return moved
	}
	return player
}
