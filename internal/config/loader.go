package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. BUILDEXPORT_EXPORT_EXE.
const EnvPrefix = "BUILDEXPORT"

// Loader handles configuration loading
type Loader struct {
	configPath string
}

// NewLoader creates a new config loader
func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
	}
}

// Load reads the config file, if present, and applies environment overrides.
// A missing default config file is not an error; a missing explicit one is.
func (l *Loader) Load() (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := l.GetConfigPath()
	if configPath != "" {
		_, err := os.Stat(configPath)
		switch {
		case err == nil:
			v.SetConfigFile(configPath)
			if filepath.Ext(configPath) == "" {
				v.SetConfigType("json")
			}
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		case os.IsNotExist(err) && l.configPath == "":
			// no user config, defaults and environment only
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetConfigPath returns the config file path
func (l *Loader) GetConfigPath() string {
	if l.configPath != "" {
		return l.configPath
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".buildexport", "buildexport.json")
}

// Load is a convenience function that creates a loader and loads the config
func Load(configPath string) (*Config, error) {
	return NewLoader(configPath).Load()
}

// setDefaults registers every key so that Unmarshal sees environment
// overrides even when the config file does not mention them.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("export.exe", cfg.Export.Exe)
	v.SetDefault("export.error_wait", cfg.Export.ErrorWait)
	v.SetDefault("export.read_buffer_size", cfg.Export.ReadBufferSize)
	v.SetDefault("export.escape", cfg.Export.Escape)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.console", cfg.Logging.Console)
	v.SetDefault("logging.pretty", cfg.Logging.Pretty)

	v.SetDefault("metrics.textfile", cfg.Metrics.Textfile)

	v.SetDefault("tracing.enabled", cfg.Tracing.Enabled)
	v.SetDefault("tracing.service_name", cfg.Tracing.ServiceName)
}
