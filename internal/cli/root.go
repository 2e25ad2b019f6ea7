// Package cli wires the connector's four protocol verbs (spec, check,
// discover, read) into a cobra command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/saif-qureshi/airbyte-source-gmail/internal/config"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/connectors/google"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/connectors/google/gmail"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/logger"
)

// version is stamped at build time via -ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "source-gmail",
	Short: "Airbyte source connector for Gmail",
	Long: `source-gmail reads messages and labels from a Gmail mailbox and emits
them as Airbyte protocol messages on stdout.

The connector authenticates with an OAuth2 refresh token and supports the
standard four-verb contract: spec, check, discover and read.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print debug logs to stderr")
}

// Execute runs the CLI. The caller decides the process exit code from the
// returned error.
func Execute() error {
	return rootCmd.Execute()
}

// newClient builds an authenticated, rate-limited Gmail client from the
// connector configuration. No network call happens until the client is
// first used.
func newClient(ctx context.Context, cfg *config.Config) (gmail.Client, error) {
	ts := google.NewTokenSource(ctx, google.Credentials{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RefreshToken: cfg.RefreshToken,
	})

	svc, err := google.NewGmailService(ctx, ts)
	if err != nil {
		return nil, err
	}

	return gmail.NewClient(svc, gmail.FromConnectorConfig(cfg)), nil
}
