// Package appdir locates and prepares the cnam configuration directory.
package appdir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Name is the directory created under the user config dir.
const Name = "cnam"

const (
	dirPerm  fs.FileMode = 0o700
	filePerm fs.FileMode = 0o600
)

// ConfigDir returns <os.UserConfigDir>/cnam, e.g. ~/.config/cnam on Linux.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config dir: %w", err)
	}
	return filepath.Join(base, Name), nil
}

// EnsureFile makes sure the config file at path exists and is private to the
// user, since it may hold the OpenCNAM auth token. A missing file is created
// empty (0600, parent dirs 0700). An existing file keeps its content but loses
// any group and world permission bits.
func EnsureFile(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if perm := info.Mode().Perm(); perm&0o077 != 0 {
			if err := os.Chmod(path, perm&^0o077); err != nil {
				return fmt.Errorf("restricting config file permissions: %w", err)
			}
		}
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("checking config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, nil, filePerm); err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	return nil
}
