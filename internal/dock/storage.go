package dock

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoState is returned by Load when no state file exists yet
var ErrNoState = errors.New("no saved dock state")

// Save writes the layout to path as JSON
func (d *DockState) Save(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// WriteFile writes encoded state to path, creating parent directories.
// The file is replaced atomically.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write dock state: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace dock state: %w", err)
	}
	return nil
}

// Load reads a layout written by Save
func Load(path string) (*DockState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoState
		}
		return nil, fmt.Errorf("failed to read dock state: %w", err)
	}

	var d DockState
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse dock state %s: %w", path, err)
	}
	if len(d.Surfaces) == 0 || d.Surfaces[MainSurface] == nil {
		return nil, fmt.Errorf("dock state %s has no main surface", path)
	}
	// the main surface never floats, every other surface does
	d.Surfaces[MainSurface].Window = nil
	for _, s := range d.Surfaces[1:] {
		if s != nil && s.Window == nil {
			s.Window = NewWindowState()
		}
	}
	d.prune()
	return &d, nil
}

// Marshal returns the layout as indented JSON
func (d *DockState) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode dock state: %w", err)
	}
	return data, nil
}
