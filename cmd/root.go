package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/csiapi/internal/version"
	"github.com/spf13/cobra"
)

var (
	configFile string
	modelName  string
	verbosity  int
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "csiapi",
	Short: "Typed client for structural analysis host models",
	Long: `csiapi - typed client for the automation model of a structural
analysis host application.

Models are kept in an offline store and edited through the same typed
facade used against a running host. This tool helps structural engineers:
  - Define models from YAML, JSON or TOML files
  - List, rename and delete named definitions
  - Generate NSCP 2015 load combinations
  - Compute general frame section properties from polygon outlines
  - Load host result tables and export them to Excel or PDF
  - Plot functions in the terminal or to an image`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   csiapi v%-48s║\n", version.Version)
		fmt.Println("  ║   Structural Analysis Host Model Client                   ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Use 'csiapi --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default ./csiapi.yaml)")
	rootCmd.PersistentFlags().StringVarP(&modelName, "model", "m", "", "Stored model name (overrides config)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress log output")
}
