// Package save persists a voyage as a gzipped JSON snapshot. One save
// slot; restoring a voyage deletes it, roguelike style.
package save

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/yarrl/game"
)

// ErrNoSave reports that no saved voyage exists at a path.
var ErrNoSave = errors.New("no saved voyage")

// Snapshot wraps the game state with bookkeeping for the save file.
type Snapshot struct {
	ID      string          `json:"id"`
	SavedAt time.Time       `json:"saved_at"`
	State   *game.GameState `json:"state"`
}

// Write snapshots the state to path. The file lands atomically or not
// at all.
func Write(path string, gs *game.GameState) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "voyage-*.tmp")
	if err != nil {
		return fmt.Errorf("create save file: %w", err)
	}
	defer os.Remove(tmp.Name())

	zw := gzip.NewWriter(tmp)
	enc := json.NewEncoder(zw)
	snap := Snapshot{
		ID:      uuid.NewString(),
		SavedAt: time.Now(),
		State:   gs,
	}
	if err := enc.Encode(snap); err != nil {
		tmp.Close()
		return fmt.Errorf("encode save: %w", err)
	}
	if err := zw.Close(); err != nil {
		tmp.Close()
		return fmt.Errorf("compress save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close save: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("store save: %w", err)
	}
	return nil
}

// Read restores the snapshot at path. ErrNoSave when there is none.
func Read(path string) (*game.GameState, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("open save: %w", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decompress save: %w", err)
	}
	defer zr.Close()

	var snap Snapshot
	if err := json.NewDecoder(zr).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode save: %w", err)
	}
	if snap.State == nil {
		return nil, fmt.Errorf("decode save: empty snapshot")
	}
	return snap.State, nil
}

// Clear removes the save file. A missing file is not an error.
func Clear(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
