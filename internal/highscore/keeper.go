package highscore

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Keeper holds the process-wide best score. It is safe for concurrent use by
// several game sessions; the value reaches disk only on Flush.
type Keeper struct {
	mu     sync.Mutex
	path   string
	best   int
	dirty  bool
	logger *log.Logger
}

// Open loads the score file. An unreadable file is logged and treated as 0
// so the game can still start.
func Open(path string, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.Default()
	}
	if path == "" {
		path = DefaultPath
	}

	best, err := Load(path)
	if err != nil {
		logger.Warn("cannot read high score, starting from 0", "path", path, "err", err)
		best = 0
	}

	return &Keeper{path: path, best: best, logger: logger}
}

// Submit offers a finished round's score. It reports whether the score
// became the new best; a tie counts.
func (k *Keeper) Submit(score int) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if score < k.best {
		return false
	}
	if score > k.best {
		k.dirty = true
	}
	k.best = score
	return true
}

// Best returns the current best score.
func (k *Keeper) Best() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.best
}

// Path returns the file the keeper writes to.
func (k *Keeper) Path() string {
	return k.path
}

// Flush writes the best score to disk.
func (k *Keeper) Flush() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := Save(k.path, k.best); err != nil {
		return err
	}
	if k.dirty {
		k.logger.Info("high score saved", "path", k.path, "score", k.best)
	}
	k.dirty = false
	return nil
}
