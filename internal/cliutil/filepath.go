package cliutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FindWDFile looks for a named file in the current working directory, then
// in each of its parents in turn. It returns the absolute path of the first
// one found, or an empty path if there is none.
func FindWDFile(name string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindFileUp(wd, name)
}

// FindFileUp is FindWDFile starting from dir rather than the working
// directory.
func FindFileUp(dir, name string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
