package renamer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoren/photorename/internal/metadata"
)

// NewName composes the target filename for a photo. ok is false when no
// capture date was derived, in which case the file is left untouched.
// With a date only the name is "date_original"; with an address it is
// "date-address_original".
func NewName(parsed metadata.Parsed, original string) (name string, ok bool) {
	if parsed.Date == "" {
		return "", false
	}

	name = parsed.Date
	if parsed.Address != "" {
		name += "-" + parsed.Address
	}
	return name + "_" + original, true
}

// Rename moves oldName to newName within dir. The target must not
// already exist.
func Rename(dir, oldName, newName string) error {
	oldPath := filepath.Join(dir, oldName)
	newPath := filepath.Join(dir, newName)

	if _, err := os.Lstat(newPath); err == nil {
		return fmt.Errorf("target %s already exists", newName)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking target %s: %w", newName, err)
	}

	return os.Rename(oldPath, newPath)
}
