package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	LogLevel string        `mapstructure:"log_level"`
	Rename   RenameConfig  `mapstructure:"rename"`
	Geocode  GeocodeConfig `mapstructure:"geocode"`
}

// RenameConfig controls candidate selection and the rename pass
type RenameConfig struct {
	Extensions []string `mapstructure:"extensions"`
	DryRun     bool     `mapstructure:"dry_run"`
	Journal    string   `mapstructure:"journal"`
}

// GeocodeConfig controls the reverse geocoding lookup
type GeocodeConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Endpoint  string        `mapstructure:"endpoint"`
	UserAgent string        `mapstructure:"user_agent"`
	Zoom      int           `mapstructure:"zoom"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// Load reads the optional photorename.toml from the user config
// directory. A missing file is not an error; defaults apply.
func Load() (*Config, error) {
	viper.SetConfigName("photorename")
	viper.SetConfigType("toml")
	if configDir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(configDir, "photorename"))
	}

	viper.SetDefault("log_level", "info")
	viper.SetDefault("rename.extensions", []string{".jpg", ".jpeg", ".heic"})
	viper.SetDefault("rename.dry_run", false)
	viper.SetDefault("rename.journal", "")
	viper.SetDefault("geocode.enabled", true)
	viper.SetDefault("geocode.endpoint", "https://nominatim.openstreetmap.org")
	viper.SetDefault("geocode.user_agent", "photorename/1.0")
	viper.SetDefault("geocode.zoom", 8)
	viper.SetDefault("geocode.timeout", 10*time.Second)

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; a malformed one is not
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
