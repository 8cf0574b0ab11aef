package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/hamster-dodge/internal/assets"
	"github.com/vovakirdan/hamster-dodge/internal/config"
	"github.com/vovakirdan/hamster-dodge/internal/core"
)

// Visual constants
const (
	Title       = "Hamster vs. Squeaky Toys"
	HamsterChar = '▓'
	HamsterFace = "o.o"
	LifeMarker  = "@"
	HUDRow      = 0
)

// HUD carries the values the session does not own.
type HUD struct {
	HighScore int
	Paused    bool
}

// Viewport projects world units onto the terminal rows below the HUD.
type Viewport struct {
	World core.Rect
	Cols  int
	Rows  int
	Top   int // First terminal row of the playfield
}

// NewViewport fits the world into a screen, leaving the HUD row free.
func NewViewport(world core.Rect, dst *core.Screen) Viewport {
	return Viewport{
		World: world,
		Cols:  dst.Width(),
		Rows:  max(dst.Height()-1, 0),
		Top:   HUDRow + 1,
	}
}

// Project converts a world rectangle to screen cells.
// Anything visible covers at least one cell.
func (v Viewport) Project(r core.Rect) core.Rect {
	if v.World.W <= 0 || v.World.H <= 0 {
		return core.Rect{}
	}

	x0 := core.FloorDiv((r.X-v.World.X)*v.Cols, v.World.W)
	x1 := core.CeilDiv((r.Right()-v.World.X)*v.Cols, v.World.W)
	y0 := core.FloorDiv((r.Y-v.World.Y)*v.Rows, v.World.H)
	y1 := core.CeilDiv((r.Bottom()-v.World.Y)*v.Rows, v.World.H)

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0+v.Top, x1-x0, y1-y0)
}

// Render draws the playfield and HUD.
func (s *GameSession) Render(dst *core.Screen, hud HUD) {
	dst.Clear()
	vp := NewViewport(s.world, dst)

	for _, t := range s.toys {
		drawToy(dst, vp, t)
	}
	drawHamster(dst, vp.Project(s.player))

	// Toys entering from the top may overlap the HUD row
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, HUDRow, ' ')
	}
	dst.DrawText(1, HUDRow, fmt.Sprintf("Score: %d", s.score))
	dst.DrawTextRight(HUDRow, 1, fmt.Sprintf("High Score: %d", max(hud.HighScore, 0)), core.ColorDefault)
	if s.lives >= 2 {
		markers := strings.TrimSpace(strings.Repeat(LifeMarker+" ", s.lives-1))
		dst.DrawTextCentered(HUDRow, markers, core.ColorOrange)
	}

	if hud.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func drawToy(dst *core.Screen, vp Viewport, t Entity) {
	sprite, ok := assets.Lookup(t.Asset)
	if !ok {
		sprite = assets.Fallback
	}
	dst.DrawRect(vp.Project(t.Rect()), sprite.Glyph, sprite.Color)
}

func drawHamster(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, HamsterChar, core.ColorBrown)
	if r.W >= len(HamsterFace) {
		cx, cy := r.Center()
		dst.DrawTextColored(cx-len(HamsterFace)/2, cy, HamsterFace, core.ColorOrange)
	}
}

// drawCenteredMessage draws a boxed two-line message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	box := core.NewRect(0, 0, w, 4).CenteredIn(core.NewRect(0, 0, dst.Width(), dst.Height()))

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+2, line2, core.ColorGray)
}

// RenderTitle draws the start screen.
func RenderTitle(dst *core.Screen, cfg config.HamsterConfig) {
	dst.Clear()
	y := max(dst.Height()/2-5, 0)

	dst.DrawTextCentered(y, Title, core.ColorBrightYellow)
	dst.DrawTextCentered(y+2, "Move the hamster with the arrow keys or WASD.", core.ColorDefault)
	dst.DrawTextCentered(y+3, "Don't get hit by the squeaky toys!", core.ColorDefault)
	dst.DrawTextCentered(y+5,
		fmt.Sprintf("Once your score reaches %d, you get an extra life!", cfg.Round.ExtraLifeScore),
		core.ColorOrange)

	// Toy strip
	palette := assets.Palette()
	names := make([]string, len(palette))
	for i, sp := range palette {
		names[i] = fmt.Sprintf("%c %s", sp.Glyph, sp.Name)
	}
	strip := strings.Join(names, "   ")
	x := (dst.Width() - len([]rune(strip))) / 2
	for i, sp := range palette {
		if i > 0 {
			x += 3
		}
		label := fmt.Sprintf("%c %s", sp.Glyph, sp.Name)
		dst.DrawTextColored(x, y+7, label, sp.Color)
		x += len([]rune(label))
	}

	dst.DrawTextCentered(y+9, "Press a key to play.", core.ColorBrightWhite)
}

// RenderGameOver draws the end-of-round screen. The prompt appears only once
// keys are accepted again.
func RenderGameOver(dst *core.Screen, score, high int, ready bool) {
	dst.Clear()
	y := max(dst.Height()/2-3, 0)

	dst.DrawTextCentered(y, "Game Over", core.ColorBrightRed)
	dst.DrawTextCentered(y+2, fmt.Sprintf("Score: %d", score), core.ColorDefault)
	dst.DrawTextCentered(y+3, fmt.Sprintf("High Score: %d", high), core.ColorBrightYellow)
	if ready {
		dst.DrawTextCentered(y+5, "Press a key to play again.", core.ColorGray)
	}
}
