package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger wraps zerolog.Logger and owns the optional log file
type Logger struct {
	logger zerolog.Logger
	file   *os.File
}

// Config holds logger configuration
type Config struct {
	Level   string // debug, info, warn, error
	File    string // log file path, appended to
	Console bool   // enable stderr output
	Pretty  bool   // human readable console output
}

// New creates a new logger. Console output goes to stderr so it never mixes
// with reports printed on stdout.
func New(cfg Config) (*Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var writers []io.Writer

	if cfg.Console {
		var consoleWriter io.Writer = os.Stderr
		if cfg.Pretty {
			consoleWriter = zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.RFC3339,
			}
		}
		writers = append(writers, consoleWriter)
	}

	var file *os.File
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}

		writers = append(writers, file)
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = io.Discard
	case 1:
		writer = writers[0]
	default:
		writer = zerolog.MultiLevelWriter(writers...)
	}

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger()

	log.Logger = logger

	return &Logger{
		logger: logger,
		file:   file,
	}, nil
}

// Close closes the log file, if any
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Zerolog returns the underlying zerolog.Logger
func (l *Logger) Zerolog() zerolog.Logger {
	return l.logger
}
