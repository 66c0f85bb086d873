// Package config loads tada settings from TOML files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultTheme     = "classic"
	DefaultColor     = "auto"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	fileName = "config.toml"
	appDir   = "tada"
)

// Config holds user-tunable settings. The task list itself is never
// configured or persisted.
type Config struct {
	Theme         string `toml:"theme"`
	Color         string `toml:"color"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogFile       string `toml:"log_file"`
	ConfirmDelete bool   `toml:"confirm_delete"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Theme:         DefaultTheme,
		Color:         DefaultColor,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
		ConfirmDelete: true,
	}
}

// Load builds a Config in priority order:
// 1. Defaults
// 2. User config file (<user config dir>/tada/config.toml)
// 3. Explicit file (path), if non-empty; it must exist
// 4. Environment variables
func Load(path string) (*Config, error) {
	cfg := Default()

	if user := userConfigFile(); user != "" {
		if err := loadFile(cfg, user); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", user, err)
		}
	}

	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// userConfigFile returns the user config path if the file exists.
func userConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, appDir, fileName)
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TADA_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TADA_COLOR"); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv("TADA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TADA_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TADA_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TADA_CONFIRM_DELETE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TADA_CONFIRM_DELETE: %w", err)
		}
		cfg.ConfirmDelete = b
	}
	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.Color = "never"
	}
	return nil
}

func oneOf(field, v string, allowed ...string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("%s: invalid value %q (want one of %s)", field, v, strings.Join(allowed, ", "))
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))

	return errors.Join(
		oneOf("theme", c.Theme, "classic", "neon", "mono"),
		oneOf("color", c.Color, "auto", "always", "never"),
		oneOf("log_level", c.LogLevel, "debug", "info", "warn", "error"),
		oneOf("log_format", c.LogFormat, "text", "json", "logfmt"),
	)
}
