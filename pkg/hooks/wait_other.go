//go:build !(linux || darwin || freebsd)

package hooks

import (
	"errors"
	"os"
	"time"
)

func waitReadable(_ *os.File, _ time.Duration) (bool, error) {
	return false, errors.New("bounded stderr wait is not supported on this platform")
}
