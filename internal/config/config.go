package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ProjectFile is the per-project config file, relative to the working directory.
const ProjectFile = ".readmegen.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "READMEGEN_"

// Modes accepted in config.
const (
	ModeFull    = "full"
	ModeWeekday = "weekday"
)

// Config holds render settings.
type Config struct {
	Template string `yaml:"template" env:"TEMPLATE"`
	Output   string `yaml:"output"   env:"OUTPUT"`
	Mode     string `yaml:"mode"     env:"MODE"`
	Timezone string `yaml:"timezone" env:"TIMEZONE"`

	// Sources lists the config files that contributed, in load order.
	Sources []string `yaml:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Template: "README.md.j2",
		Output:   "README.md",
		Mode:     ModeFull,
	}
}

// Load builds the effective config. Layers, later wins:
// defaults, the global file, the project file, READMEGEN_* variables.
// When explicit is set it replaces both files and must exist.
func Load(explicit string) (*Config, error) {
	cfg := Default()

	if explicit != "" {
		if err := cfg.mergeFile(explicit, true); err != nil {
			return nil, err
		}
	} else {
		if err := cfg.mergeFile(GlobalFile(), false); err != nil {
			return nil, err
		}
		if err := cfg.mergeFile(ProjectFile, false); err != nil {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("reading %s environment: %w", EnvPrefix, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeFile overlays the keys present in a YAML file.
func (c *Config) mergeFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	c.Sources = append(c.Sources, path)
	return nil
}

// Validate checks mode and timezone.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeFull, ModeWeekday:
	default:
		return fmt.Errorf("invalid mode %q; use %q or %q", c.Mode, ModeFull, ModeWeekday)
	}
	if c.Template == "" {
		return errors.New("template path must not be empty")
	}
	if c.Output == "" {
		return errors.New("output path must not be empty")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location returns the configured time zone, or time.Local when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
