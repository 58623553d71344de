package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by applyEnvOverrides.
const (
	EnvConfigPath       = "LOOKUP_CONFIG"
	EnvSimple           = "LOOKUP_SIMPLE"
	EnvLibc             = "LOOKUP_LIBC"
	EnvDescriptionWidth = "LOOKUP_DESCRIPTION_WIDTH"
	EnvLogLevel         = "LOOKUP_LOG_LEVEL"
	EnvNoColor          = "NO_COLOR"
)

// Description sources.
const (
	SourceManPages = "manpages"
	SourceLibc     = "libc"
)

// DefaultDescriptionWidth caps the description column of the table.
const DefaultDescriptionWidth = 80

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings shared by the lookup tools.
type Config struct {
	Output      OutputConfig      `yaml:"output"`
	Description DescriptionConfig `yaml:"description"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Simple  bool `yaml:"simple"`   // plain lines instead of a table
	NoColor bool `yaml:"no_color"` // never emit ANSI styling

	// DescriptionWidth wraps free-text columns at this many cells (0 = no limit).
	DescriptionWidth int `yaml:"description_width"`
}

// DescriptionConfig selects where errno and signal descriptions come from.
type DescriptionConfig struct {
	Source string `yaml:"source"` // manpages, libc
}

// Native reports whether descriptions come from the platform.
func (d DescriptionConfig) Native() bool {
	return d.Source == SourceLibc
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			DescriptionWidth: DefaultDescriptionWidth,
		},
		Description: DescriptionConfig{
			Source: SourceManPages,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DefaultPath returns $LOOKUP_CONFIG, or lookup/config.yaml under the user
// config directory. It returns "" when neither is available.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lookup", "config.yaml")
}

// Load reads configuration from a YAML file. A missing file (or an empty
// path) yields the defaults. Environment overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v, ok := envBool(EnvSimple); ok {
		c.Output.Simple = v
	}
	if v, ok := envBool(EnvLibc); ok {
		if v {
			c.Description.Source = SourceLibc
		} else {
			c.Description.Source = SourceManPages
		}
	}
	if raw := strings.TrimSpace(os.Getenv(EnvDescriptionWidth)); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			c.Output.DescriptionWidth = n
		}
	}
	if lvl := strings.TrimSpace(os.Getenv(EnvLogLevel)); lvl != "" {
		c.Logging.Level = lvl
	}
	// https://no-color.org: any non-empty value disables colour.
	if os.Getenv(EnvNoColor) != "" {
		c.Output.NoColor = true
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Description.Source {
	case SourceManPages, SourceLibc:
	default:
		return fmt.Errorf("%w: description.source %q (valid: %s, %s)",
			ErrInvalidConfig, c.Description.Source, SourceManPages, SourceLibc)
	}
	if c.Output.DescriptionWidth < 0 {
		return fmt.Errorf("%w: output.description_width must not be negative, got %d",
			ErrInvalidConfig, c.Output.DescriptionWidth)
	}
	return c.Logging.Validate()
}

func envBool(key string) (bool, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
