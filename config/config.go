// Package config loads lvroute settings from YAML, a .env file and LVROUTE_*
// environment variables, validates them, and hot-reloads the file on change.
//
// Precedence, lowest first: Default(), the YAML file, the process
// environment (which .env values fill in but never override).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full lvroute configuration.
type Config struct {
	Graph   GraphConfig   `yaml:"graph"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
	Render  RenderConfig  `yaml:"render"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// GraphConfig selects the graph file.
type GraphConfig struct {
	File string `yaml:"file" validate:"required"`
}

// SessionConfig configures the interactive session.
type SessionConfig struct {
	Mode string `yaml:"mode" validate:"oneof=prompt tui"`
}

// LogConfig configures zap. Level is the only setting applied on hot reload.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// RenderConfig configures the rendering collaborator.
type RenderConfig struct {
	Enabled bool   `yaml:"enabled"`
	Layout  string `yaml:"layout" validate:"oneof=circular force"`
	Width   int    `yaml:"width" validate:"min=16,max=400"`
	Height  int    `yaml:"height" validate:"min=8,max=200"`
	Seed    int64  `yaml:"seed"`
	Output  string `yaml:"output"`
}

// MetricsConfig configures the Prometheus listener.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Graph:   GraphConfig{File: "default_input.txt"},
		Session: SessionConfig{Mode: "prompt"},
		Log:     LogConfig{Level: "info", Format: "console"},
		Render:  RenderConfig{Enabled: true, Layout: "circular", Width: 60, Height: 20, Seed: 1},
		Metrics: MetricsConfig{Addr: "localhost:9090"},
	}
}

var validate = validator.New()

// Validate checks cfg against its struct tags. Every failing field is listed
// in one error wrapping ErrInvalid.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", ErrInvalid)
	}
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(msgs, "\n  - "))
}
