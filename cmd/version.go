package cmd

import (
	"fmt"

	"github.com/alexiusacademia/csiapi/internal/csi"
	"github.com/alexiusacademia/csiapi/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of csiapi",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("csiapi v%s\n", version.Version)
		fmt.Printf("Build: %s (%s)\n", version.BuildTime, version.GitCommit)
		fmt.Printf("Host object model: V%d to V%d\n", csi.V17, csi.Latest)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
