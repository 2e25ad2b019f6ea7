package cli

import (
	"github.com/spf13/cobra"

	"github.com/saif-qureshi/airbyte-source-gmail/internal/config"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/connectors/google/gmail"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/protocol"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/streams"
)

var discoverConfigPath string

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Print the catalog of available streams",
	Long: `Prints the catalog of streams this connector can read (messages and
labels) together with their record schemas, as a CATALOG message.`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().StringVar(&discoverConfigPath, "config", "", "path to the connector config file")
	_ = discoverCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, _ []string) error {
	// The catalog is static, but the config is still validated so a broken
	// config fails here rather than at read time.
	if _, err := config.Load(discoverConfigPath); err != nil {
		return err
	}

	// Schemas are intrinsic to the drivers; no client calls are made, so a
	// nil client is fine here.
	cat := streams.DiscoverCatalog([]streams.Driver{
		streams.NewMessagesDriver(nil, gmail.DefaultConfig()),
		streams.NewLabelsDriver(nil),
	})

	emitter := protocol.NewEmitter(cmd.OutOrStdout())
	return emitter.Catalog(cat)
}
