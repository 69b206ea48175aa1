package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Polygonal frame section tools",
	Long: `Compute the properties of polygonal frame sections defined in JSON
files and define them as general frame sections.

This allows modelling complex shapes like T-beams, L-beams,
or any arbitrary polygonal section.

Subcommands:
  props  - Calculate section properties and optionally define the section

Example JSON file structure:
{
  "name": "T-Beam Section",
  "vertices": [
    {"x": 0, "y": 0},
    {"x": 300, "y": 0},
    {"x": 300, "y": 400},
    {"x": 600, "y": 400},
    {"x": 600, "y": 500},
    {"x": 0, "y": 500}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
