package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/saif-qureshi/airbyte-source-gmail/internal/catalog"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/config"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/connectors/google/gmail"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/logger"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/protocol"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/streams"
)

var (
	readConfigPath  string
	readCatalogPath string
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read records from the selected streams",
	Long: `Reads records from the streams selected in the configured catalog and
emits them as RECORD messages on stdout, interleaved with LOG and STATE
messages. Exits nonzero only when no selected stream completes.`,
	RunE: runRead,
}

func init() {
	readCmd.Flags().StringVar(&readConfigPath, "config", "", "path to the connector config file")
	readCmd.Flags().StringVar(&readCatalogPath, "catalog", "", "path to the configured catalog file")
	_ = readCmd.MarkFlagRequired("config")
	_ = readCmd.MarkFlagRequired("catalog")
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(readConfigPath)
	if err != nil {
		return err
	}

	cat, err := catalog.LoadConfigured(readCatalogPath)
	if err != nil {
		return err
	}

	// An interrupt stops issuing new page and batch requests promptly;
	// the request in flight completes or times out on its own.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}

	runner := streams.NewRunner(
		streams.NewMessagesDriver(client, gmail.FromConnectorConfig(cfg)),
		streams.NewLabelsDriver(client),
	)

	logger.Info("reading streams: %v", cat.SelectedNames())
	emitter := protocol.NewEmitter(cmd.OutOrStdout())
	return runner.Run(ctx, emitter, cat.SelectedNames())
}
