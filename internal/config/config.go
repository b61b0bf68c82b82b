// Package config loads CLI settings from defaults, an optional shapes.yaml,
// SHAPES_* environment variables and command-line flags.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// FileName is the config file looked up in the search directory.
const FileName = "shapes.yaml"

// EnvPrefix prefixes every environment override, e.g. SHAPES_LOG_LEVEL.
const EnvPrefix = "SHAPES_"

var (
	Formats     = []string{"json", "yaml", "text"}
	LogLevels   = []string{"debug", "info", "warn", "error"}
	TableStyles = []string{"light", "rounded", "ascii"}
)

type Config struct {
	Format string      `koanf:"format"`
	Log    LogConfig   `koanf:"log"`
	Table  TableConfig `koanf:"table"`

	// File is the config file that was loaded, empty if none.
	File string `koanf:"-"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type TableConfig struct {
	Style string `koanf:"style"`
}

// Options controls where Load looks for settings.
type Options struct {
	// File is an explicit config path. It must exist when set.
	File string
	// Dir is searched for FileName when File is empty. Defaults to the
	// working directory.
	Dir string
	// Flags contributes every flag that was explicitly set. Flag names map to
	// keys by replacing "-" with ".", so --log-level sets log.level.
	Flags *pflag.FlagSet
}

func defaults() map[string]any {
	return map[string]any{
		"format":      "json",
		"log.level":   "warn",
		"table.style": "light",
	}
}

// Load reads configuration. Precedence, highest first: flags, environment,
// config file, defaults.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	path, err := findConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	// SHAPES_LOG_LEVEL -> log.level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "."), posflag.FlagVal(opts.Flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("config: load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.File = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// findConfigFile returns the explicit file, or FileName in the search
// directory if it exists, or "".
func findConfigFile(opts Options) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", fmt.Errorf("config: %w", err)
		}
		return opts.File, nil
	}
	dir := opts.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("config: working directory: %w", err)
		}
		dir = cwd
	}
	candidate := filepath.Join(dir, FileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", nil
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	if err := oneOf("format", c.Format, Formats); err != nil {
		return err
	}
	if err := oneOf("log.level", c.Log.Level, LogLevels); err != nil {
		return err
	}
	return oneOf("table.style", c.Table.Style, TableStyles)
}

func oneOf(key, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("config: invalid %s %q: must be one of %s", key, value, strings.Join(allowed, ", "))
}

// SlogLevel converts Log.Level to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}
