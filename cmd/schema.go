package cmd

import (
	"encoding/json"
	"os"

	"github.com/iro-cli/iro/inline"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the --json output",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(inline.Schema()))
	},
}
