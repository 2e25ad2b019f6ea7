package cli

import (
	"github.com/spf13/cobra"

	"github.com/saif-qureshi/airbyte-source-gmail/internal/config"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/protocol"
)

var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "Print the connector specification",
	Long: `Prints the connector specification, including the JSON Schema of the
configuration file, as a single SPEC protocol message.`,
	RunE: runSpec,
}

func init() {
	rootCmd.AddCommand(specCmd)
}

func runSpec(cmd *cobra.Command, _ []string) error {
	emitter := protocol.NewEmitter(cmd.OutOrStdout())
	return emitter.Spec(config.Spec())
}
