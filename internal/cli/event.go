package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// eventFlags describes one build event on the command line.
type eventFlags struct {
	source   string
	deps     []string
	depsFile string
	rebuilt  bool
}

func (f *eventFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.source, "source", "", "source file of the translation unit")
	cmd.Flags().StringArrayVar(&f.deps, "dep", nil, "dependency path (repeatable)")
	cmd.Flags().StringVar(&f.depsFile, "deps-file", "", "file listing one dependency per line, - for stdin")
	cmd.Flags().BoolVar(&f.rebuilt, "rebuilt", false, "the translation unit was rebuilt rather than served from cache")
	_ = cmd.MarkFlagRequired("source")
}

// dependencies returns --dep values followed by the entries of --deps-file.
func (f *eventFlags) dependencies(stdin io.Reader) ([]string, error) {
	deps := append([]string(nil), f.deps...)
	if f.depsFile == "" {
		return deps, nil
	}

	var r io.Reader = stdin
	if f.depsFile != "-" {
		file, err := os.Open(f.depsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open deps file: %w", err)
		}
		defer file.Close()
		r = file
	}

	fromFile, err := readDependencyList(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read deps file: %w", err)
	}
	return append(deps, fromFile...), nil
}

// readDependencyList reads one path per line. Blank lines are skipped and
// surrounding whitespace is not part of a path.
func readDependencyList(r io.Reader) ([]string, error) {
	var deps []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		deps = append(deps, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return deps, nil
}
