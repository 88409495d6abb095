// Package config loads uistate settings from the config file, the environment
// and command-line overrides, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rshade/uistate/internal/debounce"
	"github.com/rshade/uistate/internal/pagination"
)

// Environment variables read by ApplyEnv.
const (
	EnvHome      = "UISTATE_HOME"
	EnvPageSize  = "UISTATE_PAGE_SIZE"
	EnvDebounce  = "UISTATE_DEBOUNCE"
	EnvLogLevel  = "UISTATE_LOG_LEVEL"
	EnvLogFormat = "UISTATE_LOG_FORMAT"
	EnvLogFile   = "UISTATE_LOG_FILE"
)

// ErrInvalidConfig wraps every validation and environment parsing failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the root of config.yaml.
type Config struct {
	Browse  BrowseConfig  `yaml:"browse"`
	Logging LoggingConfig `yaml:"logging"`
}

// BrowseConfig holds the defaults of the browse command.
type BrowseConfig struct {
	// PageSize is the number of records per page.
	PageSize int `yaml:"page_size" validate:"gte=1,lte=1000"`

	// Debounce is the quiet period before a filter edit is applied.
	Debounce time.Duration `yaml:"debounce" validate:"gte=0s"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"  validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
	File   string `yaml:"file"`
}

// New returns the built-in defaults.
func New() *Config {
	return &Config{
		Browse: BrowseConfig{
			PageSize: pagination.DefaultPageSize,
			Debounce: debounce.DefaultDelay,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the config file at path over the defaults, then applies
// environment overrides and validates the result. An empty path means the
// default location, which may be absent.
func Load(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := New()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if err := cfg.loadFile(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: parsing %q: %w", ErrInvalidConfig, path, err)
	}
	return nil
}

// ApplyEnv overlays UISTATE_* environment variables onto c.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) error {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	if v, ok := lookupEnv(EnvPageSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvPageSize, v, err)
		}
		c.Browse.PageSize = n
	}
	if v, ok := lookupEnv(EnvDebounce); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvDebounce, v, err)
		}
		c.Browse.Debounce = d
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok {
		c.Logging.File = v
	}
	return nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
