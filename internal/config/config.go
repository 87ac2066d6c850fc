// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all assistant configuration.
type Config struct {
	Shell Shell `yaml:"shell"`
	Log   Log   `yaml:"log"`
}

// Shell holds interactive shell settings.
type Shell struct {
	Greeting     string `yaml:"greeting"`
	Prompt       string `yaml:"prompt"`
	HistoryLimit int    `yaml:"history_limit"` // Transcript lines kept by the TUI; 0 keeps everything.
	NoTUI        bool   `yaml:"no_tui"`
	HelpDir      string `yaml:"help_dir"` // Directory checked for help.txt before the embedded copy.
}

// Log holds activity log settings.
type Log struct {
	File  string `yaml:"file"`  // Empty disables logging.
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Shell: Shell{
			Greeting:     "Welcome to the assistant bot!",
			Prompt:       "Enter a command: ",
			HistoryLimit: 500,
			HelpDir:      ".assistant",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	layer, err := loadLayer(path)
	if err != nil {
		return nil, err
	}
	if layer != nil {
		cfg.merge(layer)
	}
	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Shell.Prompt == "" {
		return errors.New("config: shell.prompt cannot be empty")
	}
	if c.Shell.HistoryLimit < 0 {
		return fmt.Errorf("config: shell.history_limit must be non-negative, got %d", c.Shell.HistoryLimit)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	return nil
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ASSISTANT_PROMPT, ASSISTANT_NO_TUI,
// ASSISTANT_LOG_FILE, ASSISTANT_LOG_LEVEL.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ASSISTANT_PROMPT"); v != "" {
		c.Shell.Prompt = v
	}
	if v := os.Getenv("ASSISTANT_NO_TUI"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ASSISTANT_NO_TUI %q: %w", v, err)
		}
		c.Shell.NoTUI = b
	}
	if v := os.Getenv("ASSISTANT_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("ASSISTANT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Shell *rawShell `yaml:"shell"`
	Log   *rawLog   `yaml:"log"`
}

type rawShell struct {
	Greeting     *string `yaml:"greeting"`
	Prompt       *string `yaml:"prompt"`
	HistoryLimit *int    `yaml:"history_limit"`
	NoTUI        *bool   `yaml:"no_tui"`
	HelpDir      *string `yaml:"help_dir"`
}

type rawLog struct {
	File  *string `yaml:"file"`
	Level *string `yaml:"level"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Shell != nil {
		if layer.Shell.Greeting != nil {
			c.Shell.Greeting = *layer.Shell.Greeting
		}
		if layer.Shell.Prompt != nil {
			c.Shell.Prompt = *layer.Shell.Prompt
		}
		if layer.Shell.HistoryLimit != nil {
			c.Shell.HistoryLimit = *layer.Shell.HistoryLimit
		}
		if layer.Shell.NoTUI != nil {
			c.Shell.NoTUI = *layer.Shell.NoTUI
		}
		if layer.Shell.HelpDir != nil {
			c.Shell.HelpDir = *layer.Shell.HelpDir
		}
	}
	if layer.Log != nil {
		if layer.Log.File != nil {
			c.Log.File = *layer.Log.File
		}
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
	}
}
