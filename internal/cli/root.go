package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harun/buildexport/internal/config"
)

const version = "0.1.0"

type globalOptions struct {
	cfgFile  string
	logLevel string
	hook     string
}

// NewRootCmd builds the command tree. Every call returns fresh commands so
// flag values never carry over between executions.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "buildexport",
		Short: "buildexport - report compiler cache build events to a hook",
		Long: `buildexport notifies an external hook executable after a compiler cache
decided whether a translation unit was rebuilt or served from cache. The hook
receives a report with the source file, its dependencies and the rebuild flag
on its standard input. A missing or failing hook never fails the build.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.buildexport/buildexport.json)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.hook, "hook", "", "hook executable, overrides export.exe")

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)

	rootCmd.AddCommand(
		newNotifyCmd(opts),
		newReportCmd(opts),
		newCheckCmd(opts),
	)

	return rootCmd
}

// Execute runs the CLI. This is called by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig loads the config file and applies command line overrides.
func (o *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("hook") {
		cfg.Export.Exe = o.hook
	}
	if o.logLevel != "" {
		if err := config.ValidateLogLevel(o.logLevel); err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
		cfg.Logging.Level = o.logLevel
	}

	return cfg, nil
}
