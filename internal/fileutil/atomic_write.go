package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrExists is returned when the target exists and overwriting was not requested.
var ErrExists = errors.New("file already exists")

// AtomicWriteFile writes data to a temporary file next to filename and renames
// it into place, creating the parent directory (0700) if needed.
func AtomicWriteFile(filename string, data []byte, perm os.FileMode, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(filename); err == nil {
			return fmt.Errorf("%s: %w", filename, ErrExists)
		}
	}

	dir, name := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	tmpfile, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmpfile.Name()) // no-op once renamed

	if _, err := tmpfile.Write(data); err != nil {
		tmpfile.Close()
		return err
	}
	if err := tmpfile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpfile.Name(), perm); err != nil {
		return err
	}
	return os.Rename(tmpfile.Name(), filename)
}
