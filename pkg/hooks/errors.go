package hooks

import "errors"

var (
	// ErrHookStat is returned when the hook path cannot be stat'ed
	ErrHookStat = errors.New("problem with hook executable")

	// ErrHookNotExecutable is returned when the hook path is not a regular executable file
	ErrHookNotExecutable = errors.New("hook does not exist or is not executable")

	// ErrPipeCreate is returned when the stdin or stderr pipe cannot be created
	ErrPipeCreate = errors.New("pipe creation failed")

	// ErrSpawn is returned when the hook process cannot be started
	ErrSpawn = errors.New("hook spawn failed")

	// ErrWrite is returned when the report cannot be delivered to the hook
	ErrWrite = errors.New("report write failed")

	// ErrErrorWait is returned when waiting on the hook's stderr fails
	ErrErrorWait = errors.New("wait on hook stderr failed")

	// ErrReapMismatch is returned when the reaped process is not the spawned hook
	ErrReapMismatch = errors.New("hook wait problem")

	// ErrNonZeroExit is returned when the hook exits with a failure status
	ErrNonZeroExit = errors.New("nonzero exit status from hook")

	// ErrInvalidErrorWait is returned when the configured stderr wait is negative
	ErrInvalidErrorWait = errors.New("invalid error wait (must be >= 0)")

	// ErrInvalidBufferSize is returned when the configured read buffer size is negative
	ErrInvalidBufferSize = errors.New("invalid read buffer size (must be >= 0)")
)
