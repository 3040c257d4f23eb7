package hooks

import (
	"fmt"
	"os"
)

// CheckExecutable verifies that path names a regular file with at least one
// of the owner, group or other execute bits set.
func CheckExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHookStat, err)
	}
	if !isExecutable(info.Mode()) {
		return fmt.Errorf("%w: %s", ErrHookNotExecutable, path)
	}
	return nil
}

func isExecutable(mode os.FileMode) bool {
	return mode.IsRegular() && mode.Perm()&0o111 != 0
}
