// Command contactctl sends contact submissions from the terminal, issues
// admin tokens and inspects recorded submission outcomes.
package main

import (
	"os"
	"portfolio-contact-backend/config"
	"portfolio-contact-backend/pkg/logger"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "contactctl",
		Short: "Operate the portfolio contact backend",
		Long: `contactctl works against the same environment as the API server
(.env or process environment).

  contactctl send          Run one contact submission end to end
  contactctl token         Issue an admin bearer token
  contactctl submissions   List recorded submission outcomes`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(logLevel)
		},
	}

	root.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newSendCmd(config.LoadConfig))
	root.AddCommand(newTokenCmd(config.LoadConfig))
	root.AddCommand(newSubmissionsCmd(config.LoadConfig))

	return root
}

type configLoader func() (*config.Config, error)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
