package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	DefaultLanguage string        `envconfig:"DEFAULT_LANGUAGE" default:"en"`
	DefaultTheme    string        `envconfig:"DEFAULT_THEME" default:"dark"`
	QRLoadTimeout   time.Duration `envconfig:"QR_LOAD_TIMEOUT" default:"5s"`
	AssetsDir       string        `envconfig:"ASSETS_DIR"`
	PrefsDir        string        `envconfig:"PREFS_DIR"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values envconfig cannot.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT cannot be empty")
	}
	if c.QRLoadTimeout <= 0 {
		return fmt.Errorf("QR_LOAD_TIMEOUT must be positive, got %s", c.QRLoadTimeout)
	}
	return nil
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// PreferencesDir returns where the CLI keeps its preference database,
// falling back to the user config directory.
func (c *Config) PreferencesDir() (string, error) {
	if c.PrefsDir != "" {
		return c.PrefsDir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(base, "tos-paper-wallet"), nil
}
