// Package config loads the viewer's YAML configuration.
//
// Configuration comes from a single file named by the --config flag or the
// WB_CONFIG environment variable. There is no discovery: without either,
// the defaults apply. Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/workboard/wb/pkg/board"
	"github.com/workboard/wb/pkg/filter"
	"github.com/workboard/wb/pkg/logging"
)

// EnvVar names the environment variable holding the config path
const EnvVar = "WB_CONFIG"

// Config is the complete viewer configuration
type Config struct {
	// Fixtures is a YAML/JSON corpus file replacing the built-in fixtures.
	// Relative paths resolve against the config file's directory.
	Fixtures string `yaml:"fixtures"`

	// DefaultView is the view a board page opens on: table, kanban or workitems.
	DefaultView string `yaml:"default_view"`

	// DefaultResultSet is the Work Items set selected initially.
	DefaultResultSet string `yaml:"default_result_set"`

	// Width fixes the render width of --print output; 0 detects the terminal.
	Width int `yaml:"width"`

	// Watch reloads the fixtures file when it changes.
	Watch bool `yaml:"watch"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the logger
type LogConfig struct {
	File        string `yaml:"file"`
	Level       string `yaml:"level"`
	StatusLevel string `yaml:"status_level"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		DefaultView:      board.ViewTable.String(),
		DefaultResultSet: string(filter.DefaultResultSet),
		Log: LogConfig{
			Level:       "info",
			StatusLevel: "warn",
		},
	}
}

// Load reads the file named by path, or by WB_CONFIG when path is empty.
// With neither set the defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates one config file
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Fixtures != "" && !filepath.IsAbs(cfg.Fixtures) {
		cfg.Fixtures = filepath.Join(filepath.Dir(path), cfg.Fixtures)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects unknown view, result set and level names
func (c *Config) Validate() error {
	var errs []string

	if _, err := board.ParseViewKind(c.DefaultView); err != nil {
		errs = append(errs, fmt.Sprintf("default_view: %v", err))
	}
	if _, ok := filter.ParseResultSet(c.DefaultResultSet); !ok {
		errs = append(errs, fmt.Sprintf("default_result_set: unknown result set %q", c.DefaultResultSet))
	}
	if c.Width < 0 {
		errs = append(errs, "width: must not be negative")
	}
	if _, err := logging.ParseLevel(c.Log.Level, 0); err != nil {
		errs = append(errs, "log.level: "+err.Error())
	}
	if _, err := logging.ParseLevel(c.Log.StatusLevel, 0); err != nil {
		errs = append(errs, "log.status_level: "+err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// View returns the parsed default view
func (c *Config) View() board.ViewKind {
	v, _ := board.ParseViewKind(c.DefaultView)
	return v
}

// ResultSet returns the parsed default result set
func (c *Config) ResultSet() filter.ResultSet {
	rs, ok := filter.ParseResultSet(c.DefaultResultSet)
	if !ok {
		return filter.DefaultResultSet
	}
	return rs
}

// LogOptions converts the log section into logger options
func (c *Config) LogOptions() logging.Options {
	return logging.Options{
		File:        c.Log.File,
		Level:       c.Log.Level,
		StatusLevel: c.Log.StatusLevel,
	}
}
