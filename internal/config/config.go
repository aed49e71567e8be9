package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocaleEnv overrides the configured locale when set.
const LocaleEnv = "CELLWIN_LOCALE"

// Config holds the application configuration
type Config struct {
	Paths *Paths

	// Locale selects the codeset used to decode narrow strings. Empty
	// means "use LC_ALL, LC_CTYPE or LANG".
	Locale string

	// Default screen size
	Rows int
	Cols int

	TabSize int

	// DecodeCeiling caps how many characters one narrow insertion buffers.
	DecodeCeiling int

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// DefaultConfig returns the default configuration
func DefaultConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return defaultsAt(paths), nil
}

func defaultsAt(paths *Paths) *Config {
	return &Config{
		Paths:         paths,
		Rows:          24,
		Cols:          80,
		TabSize:       8,
		DecodeCeiling: 512,
		LogLevel:      "info",
	}
}

// Load loads config overrides from ~/.cellwin/config.json if present.
func Load() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return LoadFrom(paths)
}

// LoadFrom loads config overrides from paths.ConfigPath if present, then
// applies environment overrides.
func LoadFrom(paths *Paths) (*Config, error) {
	cfg := defaultsAt(paths)

	data, err := os.ReadFile(paths.ConfigPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := cfg.apply(data); err != nil {
			return nil, fmt.Errorf("parse %s: %w", paths.ConfigPath, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv(LocaleEnv)); v != "" {
		cfg.Locale = v
	}
	return cfg, nil
}

func (c *Config) apply(data []byte) error {
	var user struct {
		Locale        *string `json:"locale"`
		Rows          *int    `json:"rows"`
		Cols          *int    `json:"cols"`
		TabSize       *int    `json:"tab_size"`
		DecodeCeiling *int    `json:"decode_ceiling"`
		LogLevel      *string `json:"log_level"`
	}
	if err := json.Unmarshal(data, &user); err != nil {
		return err
	}
	if user.Locale != nil {
		c.Locale = *user.Locale
	}
	if user.Rows != nil && *user.Rows > 0 {
		c.Rows = *user.Rows
	}
	if user.Cols != nil && *user.Cols > 0 {
		c.Cols = *user.Cols
	}
	if user.TabSize != nil && *user.TabSize > 0 {
		c.TabSize = *user.TabSize
	}
	if user.DecodeCeiling != nil && *user.DecodeCeiling > 0 {
		c.DecodeCeiling = *user.DecodeCeiling
	}
	if user.LogLevel != nil {
		c.LogLevel = *user.LogLevel
	}
	return nil
}

// Save writes the configuration to its config file, keeping keys it does
// not own.
func (c *Config) Save() error {
	if c == nil || c.Paths == nil {
		return nil
	}
	path := c.Paths.ConfigPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	payload := map[string]any{}
	if existing, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(existing, &payload)
	}
	payload["locale"] = c.Locale
	payload["rows"] = c.Rows
	payload["cols"] = c.Cols
	payload["tab_size"] = c.TabSize
	payload["decode_ceiling"] = c.DecodeCeiling
	payload["log_level"] = c.LogLevel

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
