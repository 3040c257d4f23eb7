package config

import (
	"time"
)

// Config represents the buildexport configuration
type Config struct {
	// Export hook
	Export ExportConfig `json:"export" mapstructure:"export"`

	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// Metrics
	Metrics MetricsConfig `json:"metrics" mapstructure:"metrics"`

	// Tracing
	Tracing TracingConfig `json:"tracing" mapstructure:"tracing"`
}

// ExportConfig configures the build-event hook
type ExportConfig struct {
	Exe            string        `json:"exe" mapstructure:"exe"`                           // empty disables the hook
	ErrorWait      time.Duration `json:"error_wait" mapstructure:"error_wait"`             // stderr poll window
	ReadBufferSize int           `json:"read_buffer_size" mapstructure:"read_buffer_size"` // bytes
	Escape         bool          `json:"escape" mapstructure:"escape"`                     // escape markup in paths
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level   string `json:"level" mapstructure:"level"`
	File    string `json:"file" mapstructure:"file"`
	Console bool   `json:"console" mapstructure:"console"`
	Pretty  bool   `json:"pretty" mapstructure:"pretty"`
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Textfile string `json:"textfile" mapstructure:"textfile"`
}

// TracingConfig holds tracing configuration
type TracingConfig struct {
	Enabled     bool   `json:"enabled" mapstructure:"enabled"`
	ServiceName string `json:"service_name" mapstructure:"service_name"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Export: ExportConfig{
			Exe:            "",
			ErrorWait:      100 * time.Microsecond,
			ReadBufferSize: 64 * 1024,
			Escape:         false,
		},
		Logging: LoggingConfig{
			Level:   "warn",
			Console: true,
			Pretty:  false,
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "buildexport",
		},
	}
}
