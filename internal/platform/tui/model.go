package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hamster-dodge/internal/audio"
	"github.com/vovakirdan/hamster-dodge/internal/config"
	"github.com/vovakirdan/hamster-dodge/internal/core"
	"github.com/vovakirdan/hamster-dodge/internal/game"
	"github.com/vovakirdan/hamster-dodge/internal/highscore"
	"github.com/vovakirdan/hamster-dodge/internal/storage"
)

// Stage is the screen currently shown.
type Stage int

const (
	StageTitle Stage = iota
	StagePlaying
	StageGameOver
)

// Options wires a Model to its dependencies.
type Options struct {
	Game     config.HamsterConfig
	Runtime  core.RuntimeConfig
	Keeper   *highscore.Keeper   // Required
	Store    *storage.Store      // Optional round history
	Music    *audio.MusicPlayer  // Optional; paused together with the game
	Renderer *lipgloss.Renderer  // Optional; nil uses the default renderer
	Logger   *log.Logger
	Player   string // Name stored with finished rounds
}

// Model is the Bubble Tea model for one player: title screen, rounds and
// the game over screen.
type Model struct {
	opts     Options
	keys     GameKeyMap
	help     help.Model
	palette  Palette
	screen   *core.Screen
	session  *game.GameSession
	latch    *core.DirectionLatch
	stage    Stage
	paused   bool
	ready    bool       // Game over screen accepts keys
	final    game.State // Last finished round
	clock    int        // Playing ticks, drives the direction latch
	rounds   int
	quitting bool
}

// NewModel creates a model that starts on the title screen.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		opts:    opts,
		keys:    DefaultGameKeyMap(),
		help:    h,
		palette: NewPalette(opts.Renderer),
		screen:  core.NewScreen(opts.Runtime.ScreenW, playfieldHeight(opts.Runtime.ScreenH)),
		latch:   core.NewDirectionLatch(opts.Game.Input.HoldTicks),
		stage:   StageTitle,
	}
}

// playfieldHeight leaves the bottom row for the help line.
func playfieldHeight(termH int) int {
	return max(termH-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case readyMsg:
		m.ready = true
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.stage {
	case StageTitle:
		m.startRound()

	case StageGameOver:
		if m.ready {
			m.startRound()
		}

	case StagePlaying:
		switch {
		case action == core.ActionPause:
			m.paused = !m.paused
			m.latch.Reset()
			if m.opts.Music != nil {
				m.opts.Music.SetPaused(m.paused)
			}
		case action.IsMovement() && !m.paused:
			m.latch.Press(action, m.clock)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The world has a fixed size, so the round continues at the new scale.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.opts.Runtime.TickRate)
	if m.stage != StagePlaying || m.paused {
		return m, next
	}

	res := m.session.Step(m.latch.Direction(m.clock))
	m.clock++

	switch res.Event {
	case game.EventExtraLife:
		m.opts.Logger.Debug("extra life", "player", m.opts.Player, "score", res.State.Score)

	case game.EventLifeLost:
		m.latch.Reset()
		m.opts.Logger.Debug("life lost", "player", m.opts.Player, "score", res.State.Score, "lives", res.State.Lives)
		return m, tickAfter(m.opts.Game.Round.LifeLostPause())

	case game.EventRoundOver:
		m.finishRound(res.State)
		return m, tea.Batch(next, readyAfter(m.opts.Game.Round.GameOverDelay()))
	}

	return m, next
}

// startRound begins a fresh round. Each round gets its own seed.
func (m *Model) startRound() {
	seed := m.opts.Runtime.Seed + int64(m.rounds)
	m.rounds++

	m.session = game.NewSession(m.opts.Game, seed)
	m.latch.Reset()
	m.clock = 0
	m.paused = false
	m.ready = false
	m.stage = StagePlaying

	m.opts.Logger.Debug("round started", "player", m.opts.Player, "seed", seed)
}

// finishRound reports the score to the keeper and the round history.
func (m *Model) finishRound(st game.State) {
	m.final = st
	m.stage = StageGameOver
	m.ready = false

	best := m.opts.Keeper.Submit(st.Score)
	m.opts.Logger.Info("round over",
		"player", m.opts.Player,
		"score", st.Score,
		"ticks", st.Ticks,
		"bonus", st.BonusEarned,
		"best", best,
	)

	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveRound(storage.RoundRecord{
		Player:    m.opts.Player,
		Score:     st.Score,
		Ticks:     st.Ticks,
		BonusLife: st.BonusEarned,
	})
	if err != nil {
		m.opts.Logger.Warn("cannot record round", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.stage {
	case StageTitle:
		game.RenderTitle(m.screen, m.opts.Game)
	case StagePlaying:
		m.session.Render(m.screen, game.HUD{
			HighScore: m.opts.Keeper.Best(),
			Paused:    m.paused,
		})
	case StageGameOver:
		game.RenderGameOver(m.screen, m.final.Score, m.opts.Keeper.Best(), m.ready)
	}

	return RenderScreen(m.screen, m.palette) + "\n" + m.help.View(m.keys)
}

// CurrentStage returns the screen currently shown.
func (m Model) CurrentStage() Stage {
	return m.stage
}

// Session returns the running round, or nil before the first round.
func (m Model) Session() *game.GameSession {
	return m.session
}

// Run starts the Bubble Tea program and flushes the high score when it exits,
// whether the player quit or the program was interrupted.
func Run(opts Options) error {
	if opts.Keeper == nil {
		return errors.New("tui: high score keeper is required")
	}
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, runErr := p.Run()
	if err := opts.Keeper.Flush(); err != nil {
		model.opts.Logger.Error("cannot save high score", "err", err)
		return errors.Join(runErr, fmt.Errorf("tui: %w", err))
	}
	return runErr
}
