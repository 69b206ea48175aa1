package cmd

import (
	"github.com/spf13/cobra"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot model definitions",
	Long: `Plot model definitions in the terminal or to an image file.

Subcommands:
  function  - Plot the values of a time history or response spectrum function`,
}

func init() {
	rootCmd.AddCommand(plotCmd)
}
