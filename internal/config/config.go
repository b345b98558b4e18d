// Package config loads runtime configuration for tools built on the
// machine runtime: monitor capacities, logging, and export output.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	frame "github.com/deepaksharmaongraph/frame-transpiler"
)

// Config holds all tool configuration.
type Config struct {
	Monitor MonitorConfig `mapstructure:"monitor"`
	Logger  LoggerConfig  `mapstructure:"logger"`
	Export  ExportConfig  `mapstructure:"export"`
}

// MonitorConfig sizes the monitor histories. Negative means unbounded,
// zero disables recording, positive bounds the history.
type MonitorConfig struct {
	EventHistory      int `mapstructure:"event_history"`
	TransitionHistory int `mapstructure:"transition_history"`
}

// EventCapacity converts the configured event history size.
func (c MonitorConfig) EventCapacity() frame.Capacity {
	return toCapacity(c.EventHistory)
}

// TransitionCapacity converts the configured transition history size.
func (c MonitorConfig) TransitionCapacity() frame.Capacity {
	return toCapacity(c.TransitionHistory)
}

func toCapacity(n int) frame.Capacity {
	if n < 0 {
		return frame.Unbounded()
	}
	return frame.Limit(n)
}

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json or console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, or file path
}

// ExportConfig selects the machine description output.
type ExportConfig struct {
	Format     string `mapstructure:"format"`      // yaml, json, or dot
	OutputPath string `mapstructure:"output_path"` // empty for stdout
}

// Load loads configuration from a YAML file and FRAME_-prefixed
// environment variables. An empty path skips the file and loads
// defaults and environment overrides only.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("FRAME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers defaults; these match the zero-config monitor
// (no event history, last transition only).
func setDefaults(v *viper.Viper) {
	v.SetDefault("monitor.event_history", 0)
	v.SetDefault("monitor.transition_history", 1)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("export.format", "yaml")
	v.SetDefault("export.output_path", "")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Logger.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logger.format must be json or console, got %q", c.Logger.Format)
	}

	switch c.Export.Format {
	case "yaml", "json", "dot":
	default:
		return fmt.Errorf("export.format must be yaml, json, or dot, got %q", c.Export.Format)
	}

	return nil
}
