package hooks

import (
	"bytes"
	"fmt"
	"os"
	"time"
)

// waitForDiagnostic is swapped out in tests to force a failing wait.
var waitForDiagnostic = waitReadable

// readDiagnostic waits up to wait for the hook's stderr to become readable
// and, if it does, performs a single read of at most size bytes. Only the
// text before the first line break is returned. Output the hook writes after
// the window closes is never read.
func readDiagnostic(stderr *os.File, wait time.Duration, size int) (string, bool, error) {
	ready, err := waitForDiagnostic(stderr, wait)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrErrorWait, err)
	}
	if !ready {
		return "", false, nil
	}

	buf := make([]byte, size)
	n, _ := stderr.Read(buf)
	if n <= 0 {
		return "", false, nil
	}

	line := buf[:n]
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return string(line), true, nil
}
