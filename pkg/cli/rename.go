package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoren/photorename/internal/config"
	"github.com/jmoren/photorename/internal/geocode"
	"github.com/jmoren/photorename/internal/journal"
	"github.com/jmoren/photorename/internal/logger"
	"github.com/jmoren/photorename/internal/progress"
	"github.com/jmoren/photorename/internal/runner"
	"github.com/spf13/cobra"
)

func newRenameCommand(cfg *config.Config) *cobra.Command {
	var noGeocode bool

	cmd := &cobra.Command{
		Use:   "rename [dir]",
		Short: "Rename the photos in a directory (default: current directory)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if noGeocode {
				cfg.Geocode.Enabled = false
			}
			return runRename(cmd.Context(), cfg, dir)
		},
	}

	// Rename options
	cmd.Flags().BoolVar(&cfg.Rename.DryRun, "dry-run", cfg.Rename.DryRun, "Show renames without touching files")
	cmd.Flags().StringVar(&cfg.Rename.Journal, "journal", cfg.Rename.Journal, "Write a JSON manifest of performed renames to this path")

	// Geocoding options
	cmd.Flags().BoolVar(&noGeocode, "no-geocode", false, "Skip reverse geocoding lookups")
	cmd.Flags().StringVar(&cfg.Geocode.Endpoint, "endpoint", cfg.Geocode.Endpoint, "Nominatim endpoint URL")
	cmd.Flags().StringVar(&cfg.Geocode.UserAgent, "user-agent", cfg.Geocode.UserAgent, "User-Agent header for geocoding requests")
	cmd.Flags().DurationVar(&cfg.Geocode.Timeout, "timeout", cfg.Geocode.Timeout, "Timeout for a single geocoding request")

	return cmd
}

func runRename(ctx context.Context, cfg *config.Config, dir string) error {
	logger.SetLevel(cfg.LogLevel)

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("folder does not exist or is not a directory: %s", dir)
	}

	var geocoder runner.Geocoder
	if cfg.Geocode.Enabled {
		geocoder = geocode.New(geocode.Config{
			Endpoint:  cfg.Geocode.Endpoint,
			UserAgent: cfg.Geocode.UserAgent,
			Zoom:      cfg.Geocode.Zoom,
			Timeout:   cfg.Geocode.Timeout,
		})
	}

	jnl := journal.New(cfg.Rename.Journal)
	reporter := progress.New()

	run := runner.New(ctx, dir, geocoder, jnl, reporter, cfg)
	return run.Run()
}
