package cmd

import (
	"fmt"

	"github.com/alexiusacademia/csiapi/internal/modeldef"
	"github.com/spf13/cobra"
)

var applyFile string

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Define model entities from a definition file",
	Long: `Define coordinate systems, materials, sections, load patterns,
functions, cases, combinations, groups, constraints, mass sources, joints,
frames, named assigns and section cuts from a YAML, JSON or TOML file.

Entities are defined in dependency order. The first failure stops the run
and nothing is saved.

Examples:
  csiapi apply -f portal.yaml
  csiapi apply -f building.toml --model tower`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVarP(&applyFile, "file", "f", "", "Path to model definition file [required]")
	applyCmd.MarkFlagRequired("file")
}

func runApply(cmd *cobra.Command, args []string) error {
	def, err := modeldef.LoadFile(applyFile)
	if err != nil {
		return err
	}
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.unlock(); err != nil {
		return err
	}
	if err := modeldef.Apply(s.model, def); err != nil {
		return fmt.Errorf("apply %s: %w", applyFile, err)
	}
	if err := s.save(); err != nil {
		return err
	}

	fmt.Printf("Applied %s to model %s.\n", applyFile, s.name)
	return nil
}
