package hooks

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// process is a running hook with the parent's ends of its stdin and stderr pipes.
type process struct {
	cmd    *exec.Cmd
	stdin  *os.File
	stderr *os.File
}

// spawn starts path with no arguments and the inherited environment. The
// child gets the read end of a fresh pipe as stdin and the write end of
// another as stderr; stdout goes to the null device. All descriptors are
// closed again when spawn fails.
func spawn(path string) (*process, error) {
	inR, inW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPipeCreate, err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		inR.Close()
		inW.Close()
		return nil, fmt.Errorf("%w: %w", ErrPipeCreate, err)
	}

	cmd := &exec.Cmd{
		Path:   path,
		Args:   []string{path},
		Stdin:  inR,
		Stderr: errW,
	}
	startErr := cmd.Start()

	// The child holds its own copies now.
	inR.Close()
	errW.Close()

	if startErr != nil {
		inW.Close()
		errR.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrSpawn, path, startErr)
	}

	return &process{cmd: cmd, stdin: inW, stderr: errR}, nil
}

func (p *process) pid() int {
	return p.cmd.Process.Pid
}

// feed writes the whole report and closes stdin so the hook sees EOF.
func (p *process) feed(report []byte) error {
	_, writeErr := p.stdin.Write(report)
	closeErr := p.stdin.Close()
	if writeErr != nil {
		return fmt.Errorf("%w: %w", ErrWrite, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: %w", ErrWrite, closeErr)
	}
	return nil
}

func (p *process) closeStderr() {
	_ = p.stderr.Close()
}

// reap blocks until the hook exits. os/exec waits on the spawned pid
// itself, so a reap mismatch means the wait failed without producing an
// exit status for that pid.
func (p *process) reap() (int, []error) {
	waitErr := p.cmd.Wait()

	state := p.cmd.ProcessState
	if state == nil {
		return -1, []error{fmt.Errorf("%w: pid %d: %w", ErrReapMismatch, p.cmd.Process.Pid, waitErr)}
	}

	var errs []error
	exitCode := state.ExitCode()
	if !state.Success() {
		errs = append(errs, fmt.Errorf("%w: %s", ErrNonZeroExit, state.String()))
	} else if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			errs = append(errs, fmt.Errorf("%w: %w", ErrReapMismatch, waitErr))
		}
	}

	return exitCode, errs
}
