package hooks

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/harun/buildexport/internal/tracing"
)

const (
	// DefaultErrorWait is how long the runner waits for diagnostic output
	// on the hook's stderr after the report has been delivered.
	DefaultErrorWait = 100 * time.Microsecond

	// DefaultReadBufferSize caps the diagnostic bytes read from the hook.
	DefaultReadBufferSize = 64 * 1024

	tracerName = "github.com/harun/buildexport/pkg/hooks"
)

// Outcome classifies a single hook invocation.
type Outcome string

const (
	// OutcomeSkipped means no hook is configured
	OutcomeSkipped Outcome = "skipped"
	// OutcomeConfigError means the hook path is unusable
	OutcomeConfigError Outcome = "config_error"
	// OutcomeResourceError means pipes or the process could not be created
	OutcomeResourceError Outcome = "resource_error"
	// OutcomeFailed means the hook ran but reported a failure
	OutcomeFailed Outcome = "failed"
	// OutcomeSucceeded means the hook ran and exited zero
	OutcomeSucceeded Outcome = "succeeded"
)

// Config configures a hook Runner.
type Config struct {
	// Path is the hook executable. Empty disables the hook.
	Path string

	// ErrorWait bounds the wait for stderr output. Zero selects DefaultErrorWait.
	ErrorWait time.Duration

	// ReadBufferSize caps the diagnostic read. Zero selects DefaultReadBufferSize.
	ReadBufferSize int

	Logger zerolog.Logger
}

// Result describes what happened during one invocation.
type Result struct {
	Outcome  Outcome
	Pid      int
	ExitCode int

	// Diagnostic is the first line the hook wrote to stderr inside the wait window.
	Diagnostic         string
	DiagnosticCaptured bool

	Duration time.Duration

	// Errors holds communication and hook-reported failures. None of them
	// abort the invocation.
	Errors []error
}

// Runner spawns the configured hook, feeds it a report and reaps it.
type Runner struct {
	path      string
	errorWait time.Duration
	bufSize   int
	logger    zerolog.Logger
}

// NewRunner creates a hook runner.
func NewRunner(cfg Config) (*Runner, error) {
	if cfg.ErrorWait < 0 {
		return nil, ErrInvalidErrorWait
	}
	if cfg.ReadBufferSize < 0 {
		return nil, ErrInvalidBufferSize
	}

	runner := &Runner{
		path:      cfg.Path,
		errorWait: cfg.ErrorWait,
		bufSize:   cfg.ReadBufferSize,
		logger:    cfg.Logger.With().Str("component", "hooks").Logger(),
	}
	if runner.errorWait == 0 {
		runner.errorWait = DefaultErrorWait
	}
	if runner.bufSize == 0 {
		runner.bufSize = DefaultReadBufferSize
	}

	return runner, nil
}

// Enabled reports whether a hook path is configured.
func (r *Runner) Enabled() bool {
	return r != nil && r.path != ""
}

// Path returns the configured hook path.
func (r *Runner) Path() string {
	if r == nil {
		return ""
	}
	return r.path
}

// Run delivers report to the hook on its stdin.
//
// The returned error is non-nil only when the invocation was aborted before
// or during spawn (configuration and resource errors). Everything that goes
// wrong after the hook started is logged and collected in Result.Errors.
// Run blocks until the hook exits; ctx is only used for tracing.
func (r *Runner) Run(ctx context.Context, report []byte) (Result, error) {
	if !r.Enabled() {
		return Result{Outcome: OutcomeSkipped}, nil
	}

	ctx, span := tracing.StartSpan(ctx, tracerName, "hook.run",
		attribute.String("hook.path", r.path),
		attribute.Int("report.bytes", len(report)),
	)
	defer span.End()

	logger := tracing.PropagateToLogger(ctx, r.logger.With().Str("hook", r.path).Logger())

	if err := CheckExecutable(r.path); err != nil {
		logger.Error().Err(err).Msg("Hook is not usable, skipping export")
		span.SetStatus(codes.Error, err.Error())
		return Result{Outcome: OutcomeConfigError}, err
	}

	start := time.Now()
	proc, err := spawn(r.path)
	if err != nil {
		logger.Error().Err(err).Msg("Hook could not be started")
		span.SetStatus(codes.Error, err.Error())
		return Result{Outcome: OutcomeResourceError, Duration: time.Since(start)}, err
	}

	result := Result{Pid: proc.pid()}
	span.SetAttributes(attribute.Int("hook.pid", result.Pid))

	if err := proc.feed(report); err != nil {
		logger.Warn().Err(err).Int("pid", result.Pid).Msg("Report was not fully delivered to hook")
		result.Errors = append(result.Errors, err)
	}

	line, captured, err := readDiagnostic(proc.stderr, r.errorWait, r.bufSize)
	proc.closeStderr()
	switch {
	case err != nil:
		logger.Warn().Err(err).Int("pid", result.Pid).Msg("Could not wait for hook diagnostics")
		result.Errors = append(result.Errors, err)
	case captured:
		result.Diagnostic = line
		result.DiagnosticCaptured = true
		logger.Warn().Str("diagnostic", line).Int("pid", result.Pid).Msg("Hook reported an error")
	}

	exitCode, reapErrs := proc.reap()
	result.ExitCode = exitCode
	result.Duration = time.Since(start)
	for _, reapErr := range reapErrs {
		logger.Error().Err(reapErr).Int("pid", result.Pid).Int("exit_code", exitCode).Msg("Hook failed")
	}
	result.Errors = append(result.Errors, reapErrs...)

	result.Outcome = OutcomeSucceeded
	if len(reapErrs) > 0 {
		result.Outcome = OutcomeFailed
		span.SetStatus(codes.Error, string(OutcomeFailed))
	}
	span.SetAttributes(attribute.Int("hook.exit_code", exitCode))

	logger.Debug().
		Int("pid", result.Pid).
		Int("exit_code", exitCode).
		Dur("duration", result.Duration).
		Msg("Hook executed")

	return result, nil
}
