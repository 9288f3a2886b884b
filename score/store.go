// Package score persists the local high score and talks to the optional
// remote scoreboard. The engine only sees the narrow Store interface; both
// collaborators are replaceable in tests.
package score

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type saveFile struct {
	HighScore int `json:"high_score"`
}

// Store keeps the high score in a small JSON file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// HighScore returns the persisted high score. The bool is false when no
// score has been saved yet; a corrupt file is treated the same way.
func (s *Store) HighScore() (int, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, false
	}
	var save saveFile
	if err := json.Unmarshal(data, &save); err != nil {
		return 0, false
	}
	return save.HighScore, true
}

// SetHighScore writes the score atomically (temp file then rename) so a
// crash mid-write never corrupts the previous save.
func (s *Store) SetHighScore(score int) error {
	data, err := json.Marshal(saveFile{HighScore: score})
	if err != nil {
		return fmt.Errorf("score: marshal save: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("score: create save dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "highscore-*.json")
	if err != nil {
		return fmt.Errorf("score: create temp save: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("score: write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("score: close save: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("score: replace save: %w", err)
	}
	return nil
}
