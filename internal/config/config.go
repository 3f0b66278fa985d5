// Package config loads the settings of the buttonkit command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/networkteam/buttonkit/internal/validation"
)

// Config configures the gallery server.
type Config struct {
	// Addr is the listen address.
	// Default: "localhost:1095"
	Addr string `yaml:"addr" validate:"required,hostname_port"`
	// PathPrefix mounts the gallery below a path, e.g. "/_buttons".
	PathPrefix string `yaml:"path_prefix" validate:"omitempty,startswith=/"`
	// Title is shown on the gallery pages.
	Title string `yaml:"title"`
	// TailwindScriptURL overrides the Tailwind CDN build.
	TailwindScriptURL string `yaml:"tailwind_script_url" validate:"omitempty,url"`
	// LogLevel is one of debug, info, warn, error.
	// Default: "info"
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	// LogFile additionally writes JSON logs to this file.
	LogFile string `yaml:"log_file"`
}

// Default returns the configuration used without a config file.
func Default() Config {
	return Config{
		Addr:     "localhost:1095",
		LogLevel: "info",
	}
}

// Load reads a YAML config file on top of the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks all fields.
func (c Config) Validate() error {
	return validation.Struct(c)
}

// SlogLevel converts LogLevel, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
