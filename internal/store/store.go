// Package store persists the full game state as a JSON document on disk.
// Writes go through a temp file and rename so a failed save never truncates
// an existing good save.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dungeonexplorer/internal/game"
)

var (
	// ErrNotFound means no save document exists yet.
	ErrNotFound = errors.New("no saved game")
	// ErrCorrupt means a save document exists but cannot be decoded.
	ErrCorrupt = errors.New("saved game is corrupt")
)

// FileStore reads and writes a single save file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Exists reports whether a save document is present.
func (f *FileStore) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}

// Save writes the state atomically. The previous save survives any failure
// before the final rename.
func (f *FileStore) Save(s *game.State) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".savegame-*")
	if err != nil {
		return fmt.Errorf("failed to create temp save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close save: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace save: %w", err)
	}
	return nil
}

// Load reads and decodes the save document. Optional keys may be absent or
// present-as-empty; collections come back non-nil either way.
func (f *FileStore) Load() (*game.State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read save: %w", err)
	}

	var s game.State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	s.Normalize()
	return &s, nil
}
