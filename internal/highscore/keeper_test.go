package highscore

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestKeeperSubmit(t *testing.T) {
	k := Open(filepath.Join(t.TempDir(), "high_score.json"), quietLogger())

	steps := []struct {
		score    int
		improved bool
		best     int
	}{
		{100, true, 100},
		{50, false, 100},
		{100, true, 100}, // Tie counts
		{250, true, 250},
	}

	for _, s := range steps {
		if got := k.Submit(s.score); got != s.improved {
			t.Errorf("Submit(%d) = %v, expected %v", s.score, got, s.improved)
		}
		if k.Best() != s.best {
			t.Errorf("after Submit(%d): best = %d, expected %d", s.score, k.Best(), s.best)
		}
	}
}

func TestKeeperFlushPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_score.json")

	k := Open(path, quietLogger())
	k.Submit(321)
	if err := k.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	reopened := Open(path, quietLogger())
	if reopened.Best() != 321 {
		t.Errorf("expected 321 after reopen, got %d", reopened.Best())
	}
}

func TestKeeperFlushWithoutRounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_score.json")

	k := Open(path, quietLogger())
	if err := k.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	if n, err := Load(path); err != nil || n != 0 {
		t.Errorf("expected 0 written, got %d (%v)", n, err)
	}
}

func TestKeeperMalformedFileStartsAtZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_score.json")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	k := Open(path, quietLogger())
	if k.Best() != 0 {
		t.Errorf("expected 0 for a malformed file, got %d", k.Best())
	}

	k.Submit(5)
	if err := k.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	if n, _ := Load(path); n != 5 {
		t.Errorf("flush should repair the file, got %d", n)
	}
}

func TestKeeperConcurrentSubmit(t *testing.T) {
	k := Open(filepath.Join(t.TempDir(), "high_score.json"), quietLogger())

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			k.Submit(score)
		}(i)
	}
	wg.Wait()

	if k.Best() != 100 {
		t.Errorf("expected best 100, got %d", k.Best())
	}
}
