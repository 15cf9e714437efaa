// Package config loads declarative logger configuration from a YAML file
// with environment-variable overrides, and turns it into logger.Config
// values ready for a registry. Hosts that construct loggers in code can
// skip this package entirely.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/mbeckersen/logfan/core"
	"github.com/mbeckersen/logfan/logger"
	"github.com/mbeckersen/logfan/sink"
)

// SinkSpec describes one sink of a logger.
type SinkSpec struct {
	// Type selects the implementation: "console" or "file".
	Type string `yaml:"type" env-default:"console"`
	// Level is the sink threshold; sinks default to DEBUG so they
	// accept whatever the logger lets through.
	Level string `yaml:"level" env-default:"DEBUG"`
	// Path is the destination file for file sinks.
	Path string `yaml:"path"`
}

// LoggerSpec describes one named logger.
type LoggerSpec struct {
	Name            string     `yaml:"name"`
	Level           string     `yaml:"level" env-default:"INFO"`
	Mode            string     `yaml:"mode" env-default:"sync"`
	BufferSize      int        `yaml:"buffer_size" env-default:"10"`
	TimestampFormat string     `yaml:"timestamp_format"`
	Sinks           []SinkSpec `yaml:"sinks"`
}

// Config is the root of the configuration file.
type Config struct {
	Loggers []LoggerSpec `yaml:"loggers"`
}

// Load reads the YAML file at path, applying environment overrides per
// the cleanenv tags.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return &cfg, nil
}

// Build turns the spec into a logger.Config, constructing its sinks.
func (s LoggerSpec) Build() (logger.Config, error) {
	cfg := logger.NewConfig(s.Name)
	cfg.Level = core.ParseLevel(s.Level)
	cfg.Mode = logger.ParseMode(s.Mode)
	if s.BufferSize != 0 {
		cfg.BufferSize = s.BufferSize
	}
	if s.TimestampFormat != "" {
		cfg.TimestampFormat = s.TimestampFormat
	}

	for i, spec := range s.Sinks {
		built, err := spec.build()
		if err != nil {
			return logger.Config{}, fmt.Errorf("config: logger %q sink %d: %w", s.Name, i, err)
		}
		cfg.Sinks = append(cfg.Sinks, built)
	}
	return cfg, nil
}

func (s SinkSpec) build() (sink.Sink, error) {
	// Unlike loggers, sinks default to the permissive Debug threshold.
	level := core.Debug
	if s.Level != "" {
		level = core.ParseLevel(s.Level)
	}
	switch s.Type {
	case "", "console":
		return sink.NewConsoleSink(sink.ConsoleConfig{Level: level}), nil
	case "file":
		return sink.NewFileSink(sink.FileConfig{Path: s.Path, Level: level})
	default:
		return nil, fmt.Errorf("unknown sink type %q", s.Type)
	}
}

// Apply builds and registers every logger in the config. On the first
// failure the already-created loggers are left registered; callers that
// want all-or-nothing shut the registry down on error.
func (c *Config) Apply(r *logger.Registry) error {
	for _, spec := range c.Loggers {
		cfg, err := spec.Build()
		if err != nil {
			return err
		}
		if _, err := r.Create(cfg); err != nil {
			return err
		}
	}
	return nil
}
