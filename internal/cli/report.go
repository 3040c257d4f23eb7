package cli

import (
	"github.com/spf13/cobra"

	"github.com/harun/buildexport/pkg/export"
)

func newReportCmd(opts *globalOptions) *cobra.Command {
	event := &eventFlags{}
	var escape bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the report for a build event without running the hook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := event.dependencies(cmd.InOrStdin())
			if err != nil {
				return err
			}

			formatter := export.Formatter{Escape: escape}
			if !cmd.Flags().Changed("escape") {
				cfg, err := opts.loadConfig(cmd)
				if err != nil {
					return err
				}
				formatter.Escape = cfg.Export.Escape
			}

			_, err = cmd.OutOrStdout().Write(formatter.Format(event.source, deps, event.rebuilt))
			return err
		},
	}

	event.bind(cmd)
	cmd.Flags().BoolVar(&escape, "escape", false, "escape markup characters in paths (default from export.escape)")
	return cmd
}
