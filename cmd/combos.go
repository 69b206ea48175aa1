package cmd

import (
	"github.com/spf13/cobra"
)

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "Load combination tools",
	Long: `Generate load combinations for the stored model.

Subcommands:
  nscp  - Define NSCP 2015 strength combinations from the load patterns`,
}

func init() {
	rootCmd.AddCommand(combosCmd)
}
