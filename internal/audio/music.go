// Package audio plays the looping background theme.
//
// Audio is optional: when no output device is available the game runs
// silently and the failure is only logged.
package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate = beep.SampleRate(44100)

	// DefaultTrack is the theme file looked up relative to the working directory.
	DefaultTrack = "sounds/main_theme.wav"
)

// Track is a streamer that never ends, plus the file it reads from (if any).
type Track struct {
	Streamer beep.Streamer
	Synth    bool // No file was found; the built-in tune is used
	file     *os.File
}

// Close releases the underlying file.
func (t *Track) Close() error {
	if t.file == nil {
		return nil
	}
	return t.file.Close()
}

// OpenTrack loads a WAV file and loops it forever at the speaker rate.
// A missing file falls back to the synthesized theme.
func OpenTrack(path string) (*Track, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Track{Streamer: NewThemeGenerator(sampleRate), Synth: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}

	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}

	var s beep.Streamer = beep.Loop(-1, stream)
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, s)
	}

	return &Track{Streamer: s, file: f}, nil
}

// MusicPlayer owns the speaker and the single background track.
type MusicPlayer struct {
	mu      sync.Mutex
	logger  *log.Logger
	mixer   *beep.Mixer
	ctrl    *beep.Ctrl
	track   *Track
	started bool
}

// NewMusicPlayer creates a player. Nothing is played until Start.
func NewMusicPlayer(logger *log.Logger) *MusicPlayer {
	if logger == nil {
		logger = log.Default()
	}
	return &MusicPlayer{
		logger: logger,
		mixer:  &beep.Mixer{},
	}
}

// Start initializes the speaker and begins looping the track at path.
// Calling it again is a no-op.
func (p *MusicPlayer) Start(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}

	track, err := OpenTrack(path)
	if err != nil {
		return err
	}
	if track.Synth {
		p.logger.Debug("theme file not found, using built-in tune", "path", path)
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		track.Close()
		return fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}

	p.track = track
	p.ctrl = &beep.Ctrl{
		Streamer: &effects.Volume{Streamer: track.Streamer, Base: 2, Volume: -1},
	}
	p.mixer.Add(p.ctrl)
	speaker.Play(p.mixer)
	p.started = true

	p.logger.Info("music started", "path", path, "synth", track.Synth)
	return nil
}

// SetPaused pauses or resumes the music.
func (p *MusicPlayer) SetPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

// Close stops the music and releases the track.
func (p *MusicPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	speaker.Lock()
	p.ctrl.Paused = true
	p.mixer.Clear()
	speaker.Unlock()

	if err := p.track.Close(); err != nil {
		p.logger.Warn("cannot close track", "err", err)
	}
	p.started = false
}

// themeNotes is a bouncy arpeggio in C major, one note per beat (Hz).
var themeNotes = []float64{
	523.25, 659.25, 783.99, 659.25,
	587.33, 698.46, 880.00, 698.46,
	523.25, 659.25, 783.99, 1046.50,
	783.99, 659.25, 587.33, 493.88,
}

// ThemeGenerator synthesizes the fallback theme. It never ends.
type ThemeGenerator struct {
	sr      beep.SampleRate
	pos     int
	beatLen int
}

// NewThemeGenerator creates a theme generator for the given sample rate.
func NewThemeGenerator(sr beep.SampleRate) *ThemeGenerator {
	return &ThemeGenerator{
		sr:      sr,
		beatLen: sr.N(180 * time.Millisecond),
	}
}

// Len returns the number of samples in one pass of the tune.
func (g *ThemeGenerator) Len() int {
	return g.beatLen * len(themeNotes)
}

func (g *ThemeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	loop := g.Len()
	for i := range samples {
		beat := g.pos / g.beatLen
		inBeat := g.pos % g.beatLen
		freq := themeNotes[beat%len(themeNotes)]

		t := float64(g.pos) / float64(g.sr)
		// Plucked envelope: fast decay within each beat
		env := math.Exp(-4 * float64(inBeat) / float64(g.beatLen))
		v := 0.12 * env * (math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t))

		samples[i][0] = v
		samples[i][1] = v
		g.pos = (g.pos + 1) % loop
	}
	return len(samples), true
}

func (g *ThemeGenerator) Err() error {
	return nil
}
