//go:build darwin || freebsd

package hooks

import (
	"errors"
	"os"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// waitReadable reports whether f has data (or EOF) pending within timeout.
// select(2) keeps microsecond resolution for descriptors below FD_SETSIZE;
// higher descriptors fall back to poll(2) with the timeout rounded up to
// whole milliseconds.
func waitReadable(f *os.File, timeout time.Duration) (bool, error) {
	fd := int(f.Fd())

	var set unix.FdSet
	if limit := len(set.Bits) * int(unsafe.Sizeof(set.Bits[0])) * 8; fd >= limit {
		return pollReadable(fd, timeout)
	}

	deadline := time.Now().Add(timeout)
	for {
		set.Zero()
		set.Set(fd)

		remaining := time.Until(deadline)
		if remaining < 0 {
			remaining = 0
		}
		tv := unix.NsecToTimeval(remaining.Nanoseconds())

		n, err := unix.Select(fd+1, &set, nil, nil, &tv)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0 && set.IsSet(fd), nil
	}
}

func pollReadable(fd int, timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining < 0 {
			remaining = 0
		}
		ms := int((remaining + time.Millisecond - 1) / time.Millisecond)

		n, err := unix.Poll(fds, ms)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0 && fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0, nil
	}
}
