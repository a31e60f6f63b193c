package state

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrInvalidState is returned when persisted bytes do not encode a scheme.
var ErrInvalidState = errors.New("invalid persisted state")

// SaveState encodes the scheme as a single byte: 1 for light, 0 for dark.
func (store *Store) SaveState() []byte {
	if store.state.Scheme == LIGHT {
		return []byte{1}
	}
	return []byte{0}
}

// RestoreState applies bytes produced by SaveState. On error the scheme is left unchanged.
func (store *Store) RestoreState(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("%w: want 1 byte, got %d", ErrInvalidState, len(data))
	}
	switch data[0] {
	case 0:
		store.state.Scheme = DARK
	case 1:
		store.state.Scheme = LIGHT
	default:
		return fmt.Errorf("%w: unknown scheme byte %#x", ErrInvalidState, data[0])
	}
	return nil
}

// SaveFile writes the persisted state to path using the tmp/bak/rename pattern.
func (store *Store) SaveFile(path string) error {
	return writeFileAtomic(path, store.SaveState(), 0o644)
}

// LoadFile restores the scheme from path. A missing file leaves the store untouched.
func (store *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from local configuration
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading state file: %w", err)
	}
	return store.RestoreState(data)
}

func writeFileAtomic(target string, data []byte, perm os.FileMode) error {
	tmpPath := target + ".tmp"
	bakPath := target + ".bak"

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}
	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}

	if _, err := os.Stat(target); err == nil {
		if err := renameSafe(target, bakPath); err != nil {
			_ = os.Remove(tmpPath)
			return fmt.Errorf("backing up existing file: %w", err)
		}
	}

	if err := renameSafe(tmpPath, target); err != nil {
		if _, bakErr := os.Stat(bakPath); bakErr == nil {
			_ = renameSafe(bakPath, target)
		}
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming temp to target: %w", err)
	}

	_ = os.Remove(bakPath)
	return nil
}

// renameSafe falls back to copy+delete when rename crosses devices.
func renameSafe(oldPath, newPath string) error {
	err := os.Rename(oldPath, newPath)
	if err == nil {
		return nil
	}
	if copyErr := copyFile(oldPath, newPath); copyErr != nil {
		return fmt.Errorf("copy fallback: %w (rename error: %w)", copyErr, err)
	}
	_ = os.Remove(oldPath)
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // G304: src is an internal temp path
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck

	out, err := os.Create(dst) //nolint:gosec // G304: dst is an internal temp path
	if err != nil {
		return err
	}
	defer out.Close() //nolint:errcheck

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	if err := out.Sync(); err != nil {
		return err
	}
	return out.Close()
}
