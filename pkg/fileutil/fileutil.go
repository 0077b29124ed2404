// Package fileutil provides utility functions for working with file paths
// and file metadata.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/githubnext/agentlint/pkg/logger"
)

var log = logger.New("fileutil:fileutil")

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// PathExists checks if a path exists, file or directory.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FileSize returns the size of a file in bytes, or an error if the path does
// not exist or is a directory.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory", path)
	}
	return info.Size(), nil
}

// ValidatePath cleans a file path and rejects empty input. Relative paths are
// resolved against the current working directory.
func ValidatePath(path string) (string, error) {
	if path == "" {
		return "", errors.New("path cannot be empty")
	}
	cleanPath := filepath.Clean(path)
	if !filepath.IsAbs(cleanPath) {
		abs, err := filepath.Abs(cleanPath)
		if err != nil {
			return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
		}
		cleanPath = abs
	}
	log.Printf("Validated path: %s", cleanPath)
	return cleanPath, nil
}
