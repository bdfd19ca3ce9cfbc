package fileio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Exists reports whether path exists on the OS filesystem. It is a
// handle-free convenience; missing paths report false with no error.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// GetAbs returns the absolute form of path, resolving it against the
// working directory when necessary.
func GetAbs(path string) (string, error) {
	return filepath.Abs(path)
}
