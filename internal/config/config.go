// Package config resolves the application configuration from built-in
// defaults, an optional YAML or TOML file and environment variables, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvConfigFile   = "MRU_CONFIG"
	EnvLogLevel     = "MRU_LOG_LEVEL"
	EnvJSONLogs     = "MRU_JSON_LOGS"
	EnvConfirmClose = "MRU_CONFIRM_CLOSE"
)

var (
	ErrInvalid  = errors.New("invalid configuration")
	ErrNotFound = errors.New("config file not found")
)

type Config struct {
	Title          string       `yaml:"title" toml:"title"`
	TitleBarHeight float32      `yaml:"title_bar_height" toml:"title_bar_height"`
	Window         WindowConfig `yaml:"window" toml:"window"`
	ConfirmClose   bool         `yaml:"confirm_close" toml:"confirm_close"`
	Logging        Logging      `yaml:"logging" toml:"logging"`
	Preview        Preview      `yaml:"preview" toml:"preview"`

	// File is the config file the values were read from, if any.
	File string `yaml:"-" toml:"-"`
}

type WindowConfig struct {
	Width     float32 `yaml:"width" toml:"width"`
	Height    float32 `yaml:"height" toml:"height"`
	MinWidth  float32 `yaml:"min_width" toml:"min_width"`
	MinHeight float32 `yaml:"min_height" toml:"min_height"`
}

type Logging struct {
	Level string `yaml:"level" toml:"level"`
	JSON  bool   `yaml:"json" toml:"json"`
}

type Preview struct {
	// MaxWidth bounds the decoded preview width in pixels. Zero keeps the
	// image at its native size.
	MaxWidth int `yaml:"max_width" toml:"max_width"`
}

func Default() Config {
	return Config{
		Title:          "MRU-UI",
		TitleBarHeight: 24,
		Window: WindowConfig{
			Width:     1920,
			Height:    1080,
			MinWidth:  400,
			MinHeight: 100,
		},
		ConfirmClose: false,
		Logging: Logging{
			Level: "info",
		},
		Preview: Preview{
			MaxWidth: 480,
		},
	}
}

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// Load reads .env from the working directory when present and resolves the
// configuration from the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Resolve(os.LookupEnv)
}

// Resolve layers the config file named by MRU_CONFIG and the remaining
// environment overrides on top of Default.
func Resolve(lookup LookupFunc) (Config, error) {
	cfg := Default()

	if path, ok := lookup(EnvConfigFile); ok && strings.TrimSpace(path) != "" {
		fromFile, err := ReadFile(strings.TrimSpace(path), cfg)
		if err != nil {
			return Config{}, err
		}
		cfg = fromFile
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ReadFile decodes path on top of base using the driver for its extension.
func ReadFile(path string, base Config) (Config, error) {
	driver, err := DriverFor(path)
	if err != nil {
		return Config{}, err
	}

	exists, err := driver.Exists()
	if err != nil {
		return Config{}, fmt.Errorf("stat config %s: %w", path, err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	cfg, err := driver.Read(base)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg.File = path
	return cfg, nil
}

func applyEnv(cfg *Config, lookup LookupFunc) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}

	if v, ok := lookup(EnvJSONLogs); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvJSONLogs, v)
		}
		cfg.Logging.JSON = b
	}

	if v, ok := lookup(EnvConfirmClose); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvConfirmClose, v)
		}
		cfg.ConfirmClose = b
	}

	return nil
}

func (c Config) Validate() error {
	switch {
	case c.TitleBarHeight <= 0:
		return fmt.Errorf("%w: title_bar_height must be positive", ErrInvalid)
	case c.Window.MinWidth < 0 || c.Window.MinHeight < 0:
		return fmt.Errorf("%w: window minimum size must not be negative", ErrInvalid)
	case c.Window.Width < c.Window.MinWidth || c.Window.Height < c.Window.MinHeight:
		return fmt.Errorf("%w: window size %gx%g is below the minimum %gx%g", ErrInvalid,
			c.Window.Width, c.Window.Height, c.Window.MinWidth, c.Window.MinHeight)
	case c.TitleBarHeight > c.Window.MinHeight && c.Window.MinHeight > 0:
		return fmt.Errorf("%w: title bar taller than the minimum window height", ErrInvalid)
	case c.Preview.MaxWidth < 0:
		return fmt.Errorf("%w: preview max_width must not be negative", ErrInvalid)
	}
	return nil
}
