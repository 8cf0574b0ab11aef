// Package highscore persists the best score as a JSON document.
//
// The file holds a single JSON string with the decimal value (for example
// "1234"), which keeps it compatible with score files written by earlier
// versions of the game. A bare JSON number is accepted on load as well.
package highscore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultPath is the score file name, relative to the working directory.
const DefaultPath = "high_score.json"

// PersistenceError reports a score file that exists but cannot be used.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("highscore: %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

var errNegative = errors.New("negative score")

// Load reads the high score stored at path.
// A missing file is not an error and yields 0.
func Load(path string) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, &PersistenceError{Path: path, Err: err}
	}

	n, err := decode(data)
	if err != nil {
		return 0, &PersistenceError{Path: path, Err: err}
	}
	return n, nil
}

func decode(data []byte) (int, error) {
	data = bytes.TrimSpace(data)

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return 0, fmt.Errorf("decode: %w", err)
		}
	} else {
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return 0, fmt.Errorf("decode: %w", err)
		}
		raw = num.String()
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}
	if n < 0 {
		return 0, errNegative
	}
	return n, nil
}

// Save overwrites path with n encoded as a JSON string.
func Save(path string, n int) error {
	if n < 0 {
		return &PersistenceError{Path: path, Err: errNegative}
	}

	data, err := json.Marshal(strconv.Itoa(n))
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &PersistenceError{Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	return nil
}
