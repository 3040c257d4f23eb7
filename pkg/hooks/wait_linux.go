package hooks

import (
	"errors"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// waitReadable reports whether f has data (or EOF) pending within timeout.
// ppoll(2) takes a nanosecond timeout and has no descriptor ceiling.
func waitReadable(f *os.File, timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(f.Fd()), Events: unix.POLLIN}}

	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining < 0 {
			remaining = 0
		}
		ts := unix.NsecToTimespec(remaining.Nanoseconds())

		n, err := unix.Ppoll(fds, &ts, nil)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0 && fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0, nil
	}
}
