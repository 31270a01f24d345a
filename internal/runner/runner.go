package runner

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jmoren/photorename/internal/config"
	"github.com/jmoren/photorename/internal/exif"
	"github.com/jmoren/photorename/internal/journal"
	"github.com/jmoren/photorename/internal/logger"
	"github.com/jmoren/photorename/internal/metadata"
	"github.com/jmoren/photorename/internal/progress"
	"github.com/jmoren/photorename/internal/renamer"
	"github.com/jmoren/photorename/internal/scanner"
)

// Geocoder resolves coordinates to a short place label.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

// decodeFunc decodes the EXIF tags of the photo at path.
type decodeFunc func(path string) (metadata.TagSource, error)

// Runner drives the per-file rename pipeline over one directory.
type Runner struct {
	ctx      context.Context
	dir      string
	geocoder Geocoder // nil disables lookups
	journal  *journal.Journal
	progress *progress.Reporter
	config   *config.Config
	decode   decodeFunc
}

// New creates a new Runner
func New(ctx context.Context, dir string, geocoder Geocoder, jnl *journal.Journal,
	progress *progress.Reporter, cfg *config.Config) *Runner {
	return &Runner{
		ctx:      ctx,
		dir:      dir,
		geocoder: geocoder,
		journal:  jnl,
		progress: progress,
		config:   cfg,
		decode: func(path string) (metadata.TagSource, error) {
			return exif.DecodeFile(path)
		},
	}
}

// Run lists the candidate photos and processes each one in listing
// order. Per-file failures are logged and counted; only an empty
// candidate list or cancellation aborts the batch.
func (r *Runner) Run() error {
	photos, err := scanner.ListPhotos(r.dir, r.config.Rename.Extensions)
	if err != nil {
		return err
	}

	r.progress.Start(len(photos))

	for _, name := range photos {
		if r.ctx.Err() != nil {
			return r.ctx.Err()
		}

		if err := r.processPhoto(name); err != nil {
			logger.Error("Failed to process %s: %v", name, err)
			r.progress.Error(name, err)
		}
	}

	r.progress.Finish()

	if err := r.journal.Save(); err != nil {
		logger.Warn("Could not save journal: %v", err)
	}

	return nil
}

// processPhoto runs one file through the pipeline: decode tags, derive
// date and address, compose the new name, rename.
func (r *Runner) processPhoto(name string) error {
	path := filepath.Join(r.dir, name)

	tags, err := r.decode(path)
	if err != nil {
		logger.Debug("No usable EXIF data in %s: %v", name, err)
		r.progress.Skip(name)
		return nil
	}

	parsed := metadata.Parsed{Date: metadata.Date(tags)}

	if r.geocoder != nil {
		if lat, lon, ok := metadata.Coordinates(tags); ok {
			address, err := r.geocoder.Reverse(r.ctx, lat, lon)
			if err != nil {
				// A failed lookup never aborts the batch; the file is
				// renamed with its date alone.
				logger.Warn("Reverse geocoding failed for %s: %v", name, err)
			} else {
				parsed.Address = address
			}
		}
	}

	newName, ok := renamer.NewName(parsed, name)
	if !ok {
		logger.Debug("No capture date in %s, leaving untouched", name)
		r.progress.Skip(name)
		return nil
	}

	if r.config.Rename.DryRun {
		logger.Info("DRY RUN: would rename %s -> %s", name, newName)
		r.progress.Renamed(name)
		return nil
	}

	if err := renamer.Rename(r.dir, name, newName); err != nil {
		return fmt.Errorf("renaming %s: %w", name, err)
	}

	logger.Info("Renamed %s -> %s", name, newName)
	r.progress.Renamed(name)
	r.journal.Record(r.dir, name, newName)
	// Save after every rename so the manifest survives interruption
	if err := r.journal.Save(); err != nil {
		logger.Warn("Could not save journal: %v", err)
	}

	return nil
}
