package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
}

type LogConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
	// File receives log output. Empty means stderr for batch commands and
	// no logging for the interactive quiz.
	File string `yaml:"file"`
}

type OutputConfig struct {
	Format   string `yaml:"format"` // text or json
	Color    bool   `yaml:"color"`
	BarWidth int    `yaml:"bar_width"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Format:   "text",
			Color:    true,
			BarWidth: 30,
		},
	}
}

// LoadFromFile reads YAML over the defaults. On read or parse errors the
// defaults are returned together with the error.
func LoadFromFile(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides lets COMMSTYLE_* variables win over file values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("COMMSTYLE_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("COMMSTYLE_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("COMMSTYLE_OUTPUT_FORMAT"); v != "" {
		c.Output.Format = strings.ToLower(v)
	}
	if v := os.Getenv("COMMSTYLE_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Output.Color = b
		}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Output.Color = false
	}
}

func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q", c.Output.Format)
	}
	if c.Output.BarWidth < 0 {
		return fmt.Errorf("bar_width must be >= 0, got %d", c.Output.BarWidth)
	}
	return nil
}
