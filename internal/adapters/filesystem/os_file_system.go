package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"overlay/internal/ports"
)

// ErrUnsafePath is returned for paths the file system refuses to touch:
// the empty path, the file system root and the home directory.
var ErrUnsafePath = errors.New("refusing to operate on unsafe path")

var _ ports.FileSystem = (*OsFileSystem)(nil)

type OsFileSystem struct{}

func ProvideOsFileSystem() *OsFileSystem {
	return &OsFileSystem{}
}

func (f *OsFileSystem) WriteFile(path string, content []byte, accessMode ports.AccessMode) error {
	path, err := expandPath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), getOsFileModeForAccessMode(ports.ReadWriteExecute)); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, content, getOsFileModeForAccessMode(accessMode)); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (f *OsFileSystem) MkdirAll(path string, accessMode ports.AccessMode) error {
	path, err := expandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(path, getOsFileModeForAccessMode(accessMode)); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

func (f *OsFileSystem) MkdirTemp(pattern string) (string, error) {
	dir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}
	return dir, nil
}

// RemoveAll deletes path and everything below it. A missing path is not an
// error.
func (f *OsFileSystem) RemoveAll(path string) error {
	path, err := expandPath(path)
	if err != nil {
		return err
	}
	if err := guardRemoval(path); err != nil {
		return err
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

func (f *OsFileSystem) FileExists(path string) (bool, error) {
	path, err := expandPath(path)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists: %w", err)
}

// IsEmptyDir reports whether the directory at path has no entries.
func (f *OsFileSystem) IsEmptyDir(path string) (bool, error) {
	path, err := expandPath(path)
	if err != nil {
		return false, err
	}

	dir, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open directory: %w", err)
	}
	defer dir.Close()

	_, err = dir.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read directory: %w", err)
	}
	return false, nil
}

// expandPath resolves a leading ~ to the home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrUnsafePath)
	}
	if path[:1] != "~" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func guardRemoval(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if abs == filepath.Dir(abs) {
		return fmt.Errorf("%w: %s", ErrUnsafePath, path)
	}
	if home, err := os.UserHomeDir(); err == nil && abs == filepath.Clean(home) {
		return fmt.Errorf("%w: %s", ErrUnsafePath, path)
	}
	return nil
}

func getOsFileModeForAccessMode(accessMode ports.AccessMode) os.FileMode {
	switch accessMode {
	case ports.ReadWrite:
		return 0600
	case ports.ReadWriteExecute:
		return 0700
	default:
		return 0600
	}
}
