// hamster is a terminal rendition of Hamster vs. Squeaky Toys: steer the
// hamster around the screen and dodge the toys flying in from every edge.
//
// Usage:
//
//	hamster play             - Play in this terminal
//	hamster scores           - Show recorded rounds
//	hamster serve            - Start SSH server for remote play
//	hamster config           - Print the effective game configuration
//	hamster toys             - List the squeaky toys
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set round history path (default: ~/.hamster/rounds.db)
//	--score-file <path>   - Set high score file (default: ./high_score.json)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hamster-dodge/internal/audio"
	"github.com/vovakirdan/hamster-dodge/internal/config"
	"github.com/vovakirdan/hamster-dodge/internal/highscore"
	"github.com/vovakirdan/hamster-dodge/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagScoreFile  string
	flagMusic      string
	flagMute       bool
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hamster",
	Short: "Hamster vs. Squeaky Toys - dodge toys in your terminal",
	Long: `Hamster vs. Squeaky Toys is a terminal arcade game. Move the hamster
with the arrow keys or WASD and avoid the squeaky toys that fly in from
the edges of the screen. Reach the bonus score for an extra life.

Available commands:
  play     - Play in this terminal
  scores   - View recorded rounds
  serve    - Start SSH server for remote play
  config   - Print the effective game configuration
  toys     - List the squeaky toys

Examples:
  hamster play
  hamster play --difficulty hard
  hamster scores --browse
  hamster serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", config.GetEnv("HAMSTER_DB", storage.DefaultPath), "Path to round history database")
	pf.StringVar(&flagScoreFile, "score-file", config.GetEnv("HAMSTER_SCORE_FILE", highscore.DefaultPath), "Path to high score file")
	pf.StringVar(&flagMusic, "music", audio.DefaultTrack, "Background music WAV file (built-in tune if missing)")
	pf.BoolVar(&flagMute, "mute", false, "Disable background music")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(toysCmd)
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "hamster",
		Level:           level,
	}), nil
}

// newFileLogger logs to ~/.hamster/hamster.log so output does not corrupt
// the game screen. Falls back to discarding logs.
func newFileLogger() (*log.Logger, func(), error) {
	path, err := storage.ExpandHome("~/.hamster/hamster.log")
	if err != nil {
		logger, lerr := newLogger(io.Discard)
		return logger, func() {}, lerr
	}

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(filepath.Dir(path), 0o755)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger, lerr := newLogger(io.Discard)
		return logger, func() {}, lerr
	}

	logger, err := newLogger(f)
	return logger, func() { f.Close() }, err
}

// loadGameConfig loads the YAML tuning and applies the difficulty preset.
func loadGameConfig() (config.HamsterConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.HamsterConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openStore opens the round history. Failure only disables history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open round history, continuing without it", "err", err)
		return nil
	}
	return store
}
