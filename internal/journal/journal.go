// internal/journal/journal.go
package journal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jmoren/photorename/internal/logger"
)

// Journal records performed renames as a JSON manifest. It is opt-in;
// a nil *Journal is a no-op.
type Journal struct {
	mu      sync.Mutex
	path    string
	Renames []Entry `json:"renames"`
}

// Entry represents a single performed rename
type Entry struct {
	Directory string    `json:"directory"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Timestamp time.Time `json:"timestamp"`
}

// New creates a journal writing to path. An empty path disables the
// journal and returns nil.
func New(path string) *Journal {
	if path == "" {
		return nil
	}

	logger.Debug("Recording renames to journal at %s", path)
	return &Journal{path: path}
}

// Record appends a rename to the manifest.
func (j *Journal) Record(dir, from, to string) {
	if j == nil {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.Renames = append(j.Renames, Entry{
		Directory: dir,
		From:      from,
		To:        to,
		Timestamp: time.Now().UTC(),
	})
}

// Save writes the manifest to disk.
func (j *Journal) Save() error {
	if j == nil {
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if dir := filepath.Dir(j.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(j.path, data, 0644); err != nil {
		return err
	}

	logger.Info("Saved journal with %d entries to %s", len(j.Renames), j.path)
	return nil
}
