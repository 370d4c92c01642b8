package quest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Save writes the manager state to path. The file is written to a temporary
// sibling first and renamed into place, so a failed save leaves the old file intact.
func (m *Manager) Save(path string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating save directory: %w", err)
	}

	f, err := os.CreateTemp(dir, ".quest-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = Encode(f, m.snapshot()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = f.Chmod(0644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	m.logger.Debug("saved goals", "path", path, "goals", len(m.goals))
	return nil
}

// Load replaces the manager state with the contents of path.
// A missing file is not an error: Load reports false and leaves the state alone.
// A malformed file also leaves the state alone and returns the decode error.
func (m *Manager) Load(path string) (bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		m.logger.Debug("no save file", "path", path)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	st, err := Decode(f)
	if err != nil {
		return false, fmt.Errorf("loading %s: %w", path, err)
	}
	m.replace(st)

	m.logger.Debug("loaded goals", "path", path, "goals", len(st.Goals), "level", st.Level)
	return true, nil
}
