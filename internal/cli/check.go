package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saif-qureshi/airbyte-source-gmail/internal/config"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/connectors/google"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/logger"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/protocol"
)

var checkConfigPath string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the connection to Gmail",
	Long: `Validates the configuration and exercises the credentials once against
the Gmail API. The outcome is reported as a CONNECTION_STATUS message: a
failed check is a status report, not a crash, and still exits 0.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkConfigPath, "config", "", "path to the connector config file")
	_ = checkCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	emitter := protocol.NewEmitter(cmd.OutOrStdout())

	// A malformed config is a caller bug, reported before any network
	// call and with a nonzero exit.
	cfg, err := config.Load(checkConfigPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newClient(ctx, cfg)
	if err != nil {
		return emitter.Status(false, fmt.Sprintf("Failed to initialise Gmail client: %v", err))
	}

	email, err := client.GetProfile(ctx)
	if err != nil {
		err = google.ClassifyTokenError(err)
		logger.Warn("connection check failed: %v", err)
		return emitter.Status(false, fmt.Sprintf("Failed to connect to Gmail: %v", err))
	}

	return emitter.Status(true, fmt.Sprintf("Successfully connected to Gmail account: %s", email))
}
