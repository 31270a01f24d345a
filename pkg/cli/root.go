// pkg/cli/root.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoren/photorename/internal/config"
	"github.com/jmoren/photorename/internal/logger"
	"github.com/jmoren/photorename/internal/scanner"
	"github.com/spf13/cobra"
)

func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interruption signals
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalCh
		logger.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	rootCmd := &cobra.Command{
		Use:           "photorename",
		Short:         "Rename photos using their EXIF capture date and location",
		Long:          `A tool that renames photos in a directory after the capture date and, when GPS tags are present, the place name resolved through reverse geocoding.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Error loading configuration: %v", err)
		os.Exit(1)
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	// Add commands
	rootCmd.AddCommand(newRenameCommand(cfg))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, scanner.ErrNoPhotos) {
			fmt.Fprintln(os.Stderr, "No photos found")
		} else {
			logger.Error("Error executing command: %v", err)
		}
		os.Exit(1)
	}
}
