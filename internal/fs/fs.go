// Package fs provides filesystem utility functions.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// IsFile returns true if path is a regular file.
// If the path does not exist an error is returned.
func IsFile(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	return fi.Mode().IsRegular(), nil
}

// FileExists returns true if path exists and is a file.
func FileExists(path string) bool {
	ret, _ := IsFile(path)

	return ret
}

// IsDir returns true if the path is a directory.
// If the directory does not exist, the error from os.Stat() is returned.
func IsDir(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	return fi.IsDir(), nil
}

// Mkdir creates recursively directories.
func Mkdir(path string) error {
	return os.MkdirAll(path, os.FileMode(0o755))
}

// RealPath returns the path after resolving all symlinks and ensuring it is
// absolute.
func RealPath(path string) (string, error) {
	p, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}

	return filepath.Abs(p)
}

// AbsPaths returns a list where all paths in relPaths are prefixed with
// rootPath.
func AbsPaths(rootPath string, relPaths []string) []string {
	absPaths := make([]string, 0, len(relPaths))

	for _, d := range relPaths {
		abs := filepath.Clean(filepath.Join(rootPath, d))
		absPaths = append(absPaths, abs)
	}

	return absPaths
}

// FindFileInParentDirs finds a file in startPath or its parent directories.
// The function starts looking for a file called filename in startPath and then
// checks recursively its parent directories.
// It returns the absolute path of the first match.
// If it reaches the root directory without finding the file it returns
// os.ErrNotExist.
func FindFileInParentDirs(startPath, filename string) (string, error) {
	// filepath.Clean() removes excessive PathSeparators from the end.
	// Without it the search might be aborted too early because a path
	// ending in a Separator is interpreted as the root directory.
	searchDir := filepath.Clean(startPath)

	for {
		p := filepath.Join(searchDir, filename)

		_, err := os.Stat(p)
		if err == nil {
			abs, err := filepath.Abs(p)
			if err != nil {
				return "", fmt.Errorf("could not get absolute path of %v: %w", p, err)
			}

			return abs, nil
		}

		if !os.IsNotExist(err) {
			return "", err
		}

		if searchDir[len(searchDir)-1] == os.PathSeparator {
			return "", os.ErrNotExist
		}

		searchDir = filepath.Dir(searchDir)
	}
}

// FindFilesInSubDir returns all paths to files called filename that are in
// searchDir or its subdirectories. The function descends up to maxdepth
// levels of directories below searchDir.
func FindFilesInSubDir(searchDir, filename string, maxdepth int) ([]string, error) {
	var result []string
	glob := ""

	for i := 0; i <= maxdepth; i++ {
		globPath := filepath.Join(searchDir, glob, filename)

		matches, err := filepath.Glob(globPath)
		if err != nil {
			return nil, err
		}

		for _, m := range matches {
			abs, err := filepath.Abs(m)
			if err != nil {
				return nil, fmt.Errorf("could not get absolute path of %s: %w", m, err)
			}

			result = append(result, abs)
		}

		glob += "*/"
	}

	return result, nil
}
