package cmd

import (
	"fmt"
	"slices"

	"github.com/alexiusacademia/csiapi/internal/report"
	"github.com/spf13/cobra"
)

var resultsLoadFile string

var resultsLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load host result tables from an Excel file",
	Long: `Load analysis result tables exported by the host to Excel into the
stored model. The model is locked and every case with results is marked
as finished.

Recognized sheets:
  Joint Displacements, Joint Reactions, Assembled Joint Masses,
  Element Forces - Frames, Base Reactions, Modal Periods And Frequencies,
  Element Stresses - Area Shells, Section Cut Forces - Analysis

Examples:
  csiapi results load -f results.xlsx`,
	RunE: runResultsLoad,
}

func init() {
	resultsCmd.AddCommand(resultsLoadCmd)

	resultsLoadCmd.Flags().StringVarP(&resultsLoadFile, "file", "f", "", "Path to Excel results file [required]")
	resultsLoadCmd.MarkFlagRequired("file")
}

func runResultsLoad(cmd *cobra.Command, args []string) error {
	tables, err := report.ReadWorkbookFile(resultsLoadFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", resultsLoadFile, err)
	}
	if tables.Empty() {
		return fmt.Errorf("%s holds no result tables", resultsLoadFile)
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	known, err := s.model.LoadCases().GetNameList(0)
	if err != nil {
		return err
	}
	combos, err := s.model.LoadCombinations().GetNameList()
	if err != nil {
		return err
	}
	for _, c := range tables.Cases() {
		if !slices.Contains(known, c) && !slices.Contains(combos, c) {
			s.log.Warn("results for unknown case", "case", c)
		}
	}

	s.host.LoadResults(tables)
	if err := s.save(); err != nil {
		return err
	}
	fmt.Printf("Loaded results for %d cases into %s.\n", len(tables.Cases()), s.name)
	return nil
}
