package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/hamster-dodge/internal/assets"
	"github.com/vovakirdan/hamster-dodge/internal/config"
	"github.com/vovakirdan/hamster-dodge/internal/core"
)

func TestViewportProject(t *testing.T) {
	world := core.NewRect(0, 0, 1200, 900)
	vp := NewViewport(world, core.NewScreen(80, 25))

	tests := []struct {
		name     string
		in       core.Rect
		expected core.Rect
	}{
		{"centered hamster", core.NewRect(500, 360, 200, 180), core.NewRect(33, 10, 14, 6)},
		{"origin", core.NewRect(0, 0, 15, 37), core.NewRect(0, 1, 1, 1)},
		{"tiny keeps one cell", core.NewRect(600, 450, 1, 1), core.NewRect(40, 13, 1, 1)},
		{"off-screen left", core.NewRect(-190, 0, 150, 150), core.NewRect(-13, 1, 11, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := vp.Project(tc.in); got != tc.expected {
				t.Errorf("Project(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestRenderHUD(t *testing.T) {
	s := NewSession(quietConfig(), 1)
	dst := core.NewScreen(80, 25)

	s.Render(dst, HUD{HighScore: 42})
	row := dst.Row(HUDRow)
	if !strings.HasPrefix(row, " Score: 0") {
		t.Errorf("HUD should start with the score, got %q", row)
	}
	if !strings.HasSuffix(row, "High Score: 42 ") {
		t.Errorf("HUD should end with the high score, got %q", row)
	}
	if strings.Contains(row, LifeMarker) {
		t.Error("no life marker expected with a single life")
	}

	s.lives = 2
	s.Render(dst, HUD{})
	if !strings.Contains(dst.Row(HUDRow), LifeMarker) {
		t.Error("life marker expected with two lives")
	}
}

func TestRenderDrawsHamsterAndToys(t *testing.T) {
	s := NewSession(quietConfig(), 1)
	s.toys = append(s.toys, Entity{X: 0, Y: 450, Size: 150, Speed: 10, Edge: EdgeLeft, Asset: assets.Carrot})
	dst := core.NewScreen(80, 25)

	s.Render(dst, HUD{})

	if got := dst.GetCell(33, 10); got.Rune != HamsterChar || got.Color != core.ColorBrown {
		t.Errorf("expected hamster body at (33,10), got %+v", got)
	}
	if !strings.Contains(dst.String(), HamsterFace) {
		t.Error("expected hamster face")
	}

	carrot, _ := assets.Lookup(assets.Carrot)
	if got := dst.GetCell(0, 13); got.Rune != carrot.Glyph || got.Color != carrot.Color {
		t.Errorf("expected carrot at (0,13), got %+v", got)
	}
}

func TestRenderPaused(t *testing.T) {
	s := NewSession(quietConfig(), 1)
	dst := core.NewScreen(80, 25)

	s.Render(dst, HUD{Paused: true})
	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("expected pause overlay")
	}
}

func TestRenderTitle(t *testing.T) {
	dst := core.NewScreen(80, 25)
	RenderTitle(dst, config.DefaultHamsterConfig())
	out := dst.String()

	for _, want := range []string{Title, "extra life", "300", "Press a key to play.", "Banana", "Strawberry"} {
		if !strings.Contains(out, want) {
			t.Errorf("title screen missing %q", want)
		}
	}
}

func TestRenderGameOver(t *testing.T) {
	dst := core.NewScreen(80, 25)

	RenderGameOver(dst, 120, 450, false)
	out := dst.String()
	for _, want := range []string{"Game Over", "Score: 120", "High Score: 450"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
	if strings.Contains(out, "Press a key") {
		t.Error("prompt should be hidden until keys are accepted")
	}

	RenderGameOver(dst, 120, 450, true)
	if !strings.Contains(dst.String(), "Press a key to play again.") {
		t.Error("expected prompt once ready")
	}
}
