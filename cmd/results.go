package cmd

import (
	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Analysis result tables",
	Long: `Move analysis results between the stored model and files.

Subcommands:
  load    - Load result tables exported by the host to Excel
  export  - Write the model's results to Excel or a PDF summary`,
}

func init() {
	rootCmd.AddCommand(resultsCmd)
}
