package cli

import (
	"context"

	"github.com/harun/buildexport/internal/config"
	"github.com/harun/buildexport/internal/logger"
	"github.com/harun/buildexport/internal/metrics"
	"github.com/harun/buildexport/internal/tracing"
	"github.com/harun/buildexport/pkg/export"
	"github.com/harun/buildexport/pkg/hooks"
)

// environment holds the process-wide collaborators of one CLI invocation.
type environment struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics
}

func newEnvironment(cfg *config.Config) (*environment, error) {
	log, err := logger.New(logger.Config{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Console: cfg.Logging.Console,
		Pretty:  cfg.Logging.Pretty,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Tracing.Enabled {
		if err := tracing.InitOpenTelemetry(cfg.Tracing.ServiceName); err != nil {
			zl := log.Zerolog()
			zl.Warn().Err(err).Msg("Tracing disabled")
		}
	}

	return &environment{
		cfg:     cfg,
		log:     log,
		metrics: metrics.NewMetrics(),
	}, nil
}

func (e *environment) exporter() (*export.Exporter, error) {
	runner, err := hooks.NewRunner(hooks.Config{
		Path:           e.cfg.Export.Exe,
		ErrorWait:      e.cfg.Export.ErrorWait,
		ReadBufferSize: e.cfg.Export.ReadBufferSize,
		Logger:         e.log.Zerolog(),
	})
	if err != nil {
		return nil, err
	}

	return export.New(export.Config{
		Notifier:  runner,
		Formatter: export.Formatter{Escape: e.cfg.Export.Escape},
		Metrics:   e.metrics,
		Logger:    e.log.Zerolog(),
	}), nil
}

// close flushes metrics and spans and closes the log file.
func (e *environment) close(ctx context.Context) {
	zl := e.log.Zerolog()

	if path := e.cfg.Metrics.Textfile; path != "" {
		if err := e.metrics.WriteTextfile(path); err != nil {
			zl.Warn().Err(err).Str("path", path).Msg("Failed to write metrics textfile")
		}
	}

	if e.cfg.Tracing.Enabled {
		if err := tracing.ShutdownOpenTelemetry(ctx); err != nil {
			zl.Warn().Err(err).Msg("Failed to shut down tracing")
		}
	}

	_ = e.log.Close()
}
