package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNotifyCmd(opts *globalOptions) *cobra.Command {
	event := &eventFlags{}

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send one build event to the configured hook",
		Long: `Run one export session: record the source and its dependencies, then hand
the report to the hook. Problems with the configuration or the hook are
logged and never change the exit status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := event.dependencies(cmd.InOrStdin())
			if err != nil {
				return err
			}

			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "buildexport: %v; export skipped\n", err)
				return nil
			}

			env, err := newEnvironment(cfg)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "buildexport: %v; export skipped\n", err)
				return nil
			}
			defer env.close(cmd.Context())

			exporter, err := env.exporter()
			if err != nil {
				zl := env.log.Zerolog()
				zl.Error().Err(err).Msg("Export skipped")
				return nil
			}

			session := exporter.Begin(event.source)
			for _, dep := range deps {
				session.AddDependency(dep)
			}
			session.End(cmd.Context(), event.rebuilt)

			return nil
		},
	}

	event.bind(cmd)
	return cmd
}
