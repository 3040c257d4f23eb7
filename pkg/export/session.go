package export

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/harun/buildexport/internal/metrics"
	"github.com/harun/buildexport/internal/tracing"
	"github.com/harun/buildexport/pkg/hooks"
)

const tracerName = "github.com/harun/buildexport/pkg/export"

// Notifier delivers a formatted report to the hook executable.
// *hooks.Runner implements it.
type Notifier interface {
	Enabled() bool
	Run(ctx context.Context, report []byte) (hooks.Result, error)
}

// Config configures an Exporter.
type Config struct {
	// Notifier receives the report when a session ends. Nil disables export.
	Notifier  Notifier
	Formatter Formatter
	Metrics   *metrics.Metrics
	Logger    zerolog.Logger
}

// Exporter hands out export sessions that share one hook configuration.
type Exporter struct {
	notifier  Notifier
	formatter Formatter
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// New creates an Exporter.
func New(cfg Config) *Exporter {
	return &Exporter{
		notifier:  cfg.Notifier,
		formatter: cfg.Formatter,
		metrics:   cfg.Metrics,
		logger:    cfg.Logger.With().Str("component", "export").Logger(),
	}
}

// Begin opens a session for one translation unit. No I/O is performed.
func (e *Exporter) Begin(source string) *Session {
	if e == nil {
		e = New(Config{Logger: zerolog.Nop()})
	}

	id := tracing.NewSessionID()
	return &Session{
		exporter: e,
		id:       id,
		source:   source,
		deps:     NewDependencySet(),
		logger:   e.logger.With().Str("session_id", id).Str("source", source).Logger(),
	}
}

// Session collects the dependencies of one translation unit between Begin
// and End. All methods are no-ops on a nil Session. A Session is not safe
// for concurrent use.
type Session struct {
	exporter *Exporter
	id       string
	source   string
	deps     *DependencySet
	ended    bool
	logger   zerolog.Logger
}

// ID returns the session ID used in logs and spans.
func (s *Session) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Source returns the source path, or "" once the session has ended.
func (s *Session) Source() string {
	if s == nil {
		return ""
	}
	return s.source
}

// Dependencies returns the recorded dependency paths in call order.
func (s *Session) Dependencies() []string {
	if s == nil {
		return nil
	}
	return s.deps.Paths()
}

// Len returns the number of recorded dependencies.
func (s *Session) Len() int {
	if s == nil {
		return 0
	}
	return s.deps.Len()
}

// Ended reports whether End has run.
func (s *Session) Ended() bool {
	if s == nil {
		return false
	}
	return s.ended
}

// AddDependency records path. Calls on a nil or ended session are ignored
// with a warning.
func (s *Session) AddDependency(path string) {
	if s == nil {
		return
	}
	if s.ended {
		s.logger.Warn().Str("dependency", path).Msg("Dependency added after export session ended, ignoring")
		return
	}
	s.deps.Add(path)
}

// End formats the report, hands it to the hook if one is configured and
// releases the session state. End never fails: problems with the hook are
// logged by the hook runner and otherwise only show up in metrics and spans.
func (s *Session) End(ctx context.Context, rebuilt bool) {
	if s == nil {
		return
	}
	if s.ended {
		s.logger.Warn().Msg("Export session already ended")
		return
	}
	defer s.release()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx = tracing.WithSessionID(ctx, s.id)
	ctx, span := tracing.StartSpan(ctx, tracerName, "export.end",
		attribute.String("source", s.source),
		attribute.Int("dependencies", s.deps.Len()),
		attribute.Bool("rebuilt", rebuilt),
	)
	defer span.End()

	e := s.exporter
	e.metrics.RecordSession(rebuilt, s.deps.Len())

	if e.notifier == nil || !e.notifier.Enabled() {
		return
	}

	report := e.formatter.Format(s.source, s.deps.paths, rebuilt)
	result, err := e.notifier.Run(ctx, report)
	e.metrics.RecordHook(string(result.Outcome), result.Duration, result.DiagnosticCaptured)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	for _, hookErr := range result.Errors {
		span.RecordError(hookErr)
	}
}

func (s *Session) release() {
	s.deps.Reset()
	s.source = ""
	s.ended = true
}
