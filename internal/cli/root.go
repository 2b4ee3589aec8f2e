// Package cli wires the command line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tleaf/barnview/internal/app"
)

var (
	flagConfig string
	flagHost   string
	flagPoll   int
)

var rootCmd = &cobra.Command{
	Use:   "barnview",
	Short: "Terminal dashboard for a tobacco curing chamber controller",
	Long: `Barnview monitors and controls a curing chamber controller over its
HTTP API. Run without arguments to open the interactive dashboard, or use
the status and send subcommands for one-shot scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(cmd.Context(), app.Options{
			ConfigPath: flagConfig,
			Host:       flagHost,
			PollEvery:  flagPoll,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "controller host:port (overrides config)")
	rootCmd.Flags().IntVar(&flagPoll, "poll", 0, "poll interval in seconds (overrides config)")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(sendCmd)
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
