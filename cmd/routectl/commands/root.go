// Package commands holds the routectl subcommands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-route-loader/internal/logger"
)

// Options carries the persistent flags to every subcommand.
type Options struct {
	ConfigPath string
	LogLevel   string

	// Logger writes to the command's stderr. Set before any RunE runs.
	Logger *logger.Logger
}

// NewRootCommand builds routectl with all of its subcommands.
func NewRootCommand(version string) *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "routectl",
		Short: "Inspect route directories and talk to a route server",
		Long: `routectl prints the registration plan of a route directory, signs
requests, issues bearer tokens and calls a running route server.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.Logger = logger.NewLoggerTo(cmd.ErrOrStderr(), "routectl")
			return logger.SetLevel(opts.LogLevel)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "JSON config file path")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "Log level")

	rootCmd.AddCommand(
		NewRoutesCommand(opts),
		NewSignCommand(opts),
		NewIssueCommand(opts),
		NewCallCommand(opts),
	)

	return rootCmd
}
