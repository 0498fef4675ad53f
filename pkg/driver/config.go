package driver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ConfigFileNames are searched, in order, in each directory while walking up.
var ConfigFileNames = []string{"tiny.yml", "tiny.yaml", "tiny.toml"}

// ErrConfigNotFound is returned by FindConfig when no config file exists.
var ErrConfigNotFound = errors.New("config not found")

// ColorMode selects when diagnostics are coloured.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ConfigFormat identifies the config file syntax.
type ConfigFormat int

const (
	FormatYAML ConfigFormat = iota
	FormatTOML
)

func (f ConfigFormat) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// Config holds tool settings read from tiny.yml or tiny.toml.
type Config struct {
	LogLevel string    `yaml:"log_level" toml:"log_level"`
	Color    ColorMode `yaml:"color" toml:"color"`
	Fixtures string    `yaml:"fixtures" toml:"fixtures"`
	Trace    bool      `yaml:"trace" toml:"trace"`

	// Path is the file the config was read from; empty for defaults.
	Path string `yaml:"-" toml:"-"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		Color:    ColorAuto,
		Fixtures: filepath.Join("testdata", "fixtures"),
	}
}

// SlogLevel maps LogLevel onto a slog level. Trace forces debug.
func (c *Config) SlogLevel() (slog.Level, error) {
	if c.Trace {
		return slog.LevelDebug, nil
	}
	return ParseLogLevel(c.LogLevel)
}

// ParseLogLevel accepts debug, info, warn/warning and error.
func ParseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("config: unknown log level %q", raw)
	}
}

func (c *Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("config: color must be auto, always or never, got %q", c.Color)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadConfig reads a config file. The format follows the file extension.
// Relative fixture paths are resolved against the config file's directory.
func LoadConfig(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("config: path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data, detectConfigFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	cfg.Path = abs
	if cfg.Fixtures != "" && !filepath.IsAbs(cfg.Fixtures) {
		cfg.Fixtures = filepath.Join(filepath.Dir(abs), filepath.FromSlash(cfg.Fixtures))
	}
	return cfg, nil
}

// ParseConfig decodes config content over the defaults. Unknown keys are errors.
func ParseConfig(data []byte, format ConfigFormat) (*Config, error) {
	cfg := DefaultConfig()
	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("config: parse toml: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, key := range undecoded {
				keys[i] = key.String()
			}
			return nil, fmt.Errorf("config: unknown keys %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: unsupported format %s", format)
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func detectConfigFormat(path string) ConfigFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// FindConfig walks upward from start looking for a config file.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("config: resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if err == nil && !info.IsDir() {
				return candidate, nil
			}
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config: no %s found from %s upwards: %w", strings.Join(ConfigFileNames, "/"), origin, ErrConfigNotFound)
		}
		dir = parent
	}
}

// ResolveConfig loads explicit when set, otherwise the nearest config above
// start, otherwise the defaults.
func ResolveConfig(explicit, start string) (*Config, error) {
	if strings.TrimSpace(explicit) != "" {
		return LoadConfig(explicit)
	}
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("config: resolve working directory: %w", err)
		}
		start = cwd
	}
	path, err := FindConfig(start)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return LoadConfig(path)
}
