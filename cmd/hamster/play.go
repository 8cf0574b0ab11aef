package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hamster-dodge/internal/audio"
	"github.com/vovakirdan/hamster-dodge/internal/core"
	"github.com/vovakirdan/hamster-dodge/internal/highscore"
	"github.com/vovakirdan/hamster-dodge/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Arrows/WASD  - Move the hamster
  P            - Pause
  Esc/Q        - Save high score and quit
  Any key      - Start a round (title and game over screens)

Difficulty options:
  easy   - Slower, rarer toys and one more life
  normal - The classic pace
  hard   - Faster, more frequent toys

Examples:
  hamster play
  hamster play --difficulty easy
  hamster play --config ./my-hamster.yaml
  hamster play --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newFileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	keeper := highscore.Open(flagScoreFile, logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	var music *audio.MusicPlayer
	if !flagMute {
		music = audio.NewMusicPlayer(logger.WithPrefix("audio"))
		if err := music.Start(flagMusic); err != nil {
			logger.Warn("audio unavailable, playing silently", "err", err)
			music = nil
		} else {
			defer music.Close()
		}
	}

	return tui.Run(tui.Options{
		Game: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Keeper: keeper,
		Store:  store,
		Music:  music,
		Logger: logger,
	})
}
