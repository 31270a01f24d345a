// internal/progress/reporter.go
package progress

import (
	"sync"
	"time"

	"github.com/jmoren/photorename/internal/logger"
)

// Reporter tracks and reports rename progress
type Reporter struct {
	mu             sync.Mutex
	total          int
	renamed        int
	skipped        int
	errors         int
	startTime      time.Time
	lastUpdateTime time.Time
	updateInterval time.Duration
}

// New creates a new progress reporter
func New() *Reporter {
	return &Reporter{
		updateInterval: 2 * time.Second,
	}
}

// Start initializes the reporter with the total number of candidates
func (r *Reporter) Start(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.total = total
	r.renamed = 0
	r.skipped = 0
	r.errors = 0
	r.startTime = time.Now()
	r.lastUpdateTime = time.Now()

	logger.Info("Processing %d photos", total)
}

// Renamed marks a file as successfully renamed
func (r *Reporter) Renamed(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.renamed++
	r.updateProgress()
}

// Skip marks a file as skipped
func (r *Reporter) Skip(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.skipped++
	r.updateProgress()
}

// Error marks a file as failed
func (r *Reporter) Error(path string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errors++
	r.updateProgress()
}

// Finish completes the progress reporting
func (r *Reporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()

	duration := time.Since(r.startTime)

	logger.Info("Done: %d/%d renamed, %d skipped, %d errors in %s",
		r.renamed, r.total, r.skipped, r.errors, duration.Round(time.Second))
}

// updateProgress displays intermediate progress at most once per
// interval
func (r *Reporter) updateProgress() {
	now := time.Now()
	if now.Sub(r.lastUpdateTime) < r.updateInterval {
		return
	}

	r.lastUpdateTime = now
	processed := r.renamed + r.skipped + r.errors
	if processed == 0 {
		return
	}

	percentage := float64(processed) / float64(r.total) * 100
	logger.Info("Progress: %.1f%% (%d/%d, %d renamed, %d skipped, %d errors)",
		percentage, processed, r.total, r.renamed, r.skipped, r.errors)
}
