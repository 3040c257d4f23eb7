package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harun/buildexport/pkg/hooks"
)

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and the hook executable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cfg.Export.Exe == "" {
				fmt.Fprintln(out, "Export: disabled (no hook configured)")
				return nil
			}

			if err := hooks.CheckExecutable(cfg.Export.Exe); err != nil {
				return err
			}

			fmt.Fprintf(out, "Export: enabled\n")
			fmt.Fprintf(out, "Hook: %s\n", cfg.Export.Exe)
			fmt.Fprintf(out, "Error wait: %s\n", cfg.Export.ErrorWait)
			return nil
		},
	}
}
