package config

import (
	"errors"
	"fmt"
	"strings"
)

var validLogLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// Validate checks configuration values
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Export.ErrorWait < 0 {
		errs = append(errs, fmt.Errorf("export.error_wait must be >= 0, got %s", cfg.Export.ErrorWait))
	}
	if cfg.Export.ReadBufferSize < 0 {
		errs = append(errs, fmt.Errorf("export.read_buffer_size must be >= 0, got %d", cfg.Export.ReadBufferSize))
	}
	if err := ValidateLogLevel(cfg.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	if cfg.Tracing.Enabled && strings.TrimSpace(cfg.Tracing.ServiceName) == "" {
		errs = append(errs, fmt.Errorf("tracing.service_name is required when tracing is enabled"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// ValidateLogLevel validates a log level
func ValidateLogLevel(level string) error {
	if level == "" {
		return nil
	}
	for _, valid := range validLogLevels {
		if strings.EqualFold(level, valid) {
			return nil
		}
	}
	return fmt.Errorf("invalid log level %q (must be one of: %s)", level, strings.Join(validLogLevels, ", "))
}
