package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoPhotos reports a directory with no candidate photo files.
var ErrNoPhotos = errors.New("no photos found")

// ListPhotos returns the candidate photo file names in dir, in
// directory listing order. Extension matching is case-insensitive.
// Subdirectories are not descended into.
func ListPhotos(dir string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	allowed := normalizeExtensions(extensions)

	var photos []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if allowed[ext] {
			photos = append(photos, entry.Name())
		}
	}

	if len(photos) == 0 {
		return nil, ErrNoPhotos
	}
	return photos, nil
}

// normalizeExtensions lowercases the configured allowlist and ensures a
// leading dot, so entries like "JPG" or ".Jpeg" still match.
func normalizeExtensions(extensions []string) map[string]bool {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = true
	}
	return allowed
}
