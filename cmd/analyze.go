package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var analyzeCases []string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the analysis and report case status",
	Long: `Flag cases to run, run the analysis and print the status of every
load case. Without --case every case runs.

The offline store solves nothing itself: cases finish only when results
were loaded for them with 'csiapi results load'.

Examples:
  csiapi analyze
  csiapi analyze --case DEAD --case MODAL`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringSliceVarP(&analyzeCases, "case", "c", nil, "Case to run (repeatable)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	a := s.model.Analyze()
	if err := a.SetRunAllCases(len(analyzeCases) == 0); err != nil {
		return err
	}
	for _, c := range analyzeCases {
		if err := a.SetRunCaseFlag(c, true); err != nil {
			return err
		}
	}
	// The host only runs saved models.
	if err := s.save(); err != nil {
		return err
	}
	if err := a.CreateAnalysisModel(); err != nil {
		return err
	}
	if err := a.Run(); err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}

	status, err := a.CaseStatus()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("ANALYSIS STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Case\tStatus\n")
	fmt.Fprintf(w, "  ────\t──────\n")
	for _, cs := range status {
		fmt.Fprintf(w, "  %s\t%s\n", cs.Case, cs.Status)
	}
	w.Flush()
	fmt.Println()
	return nil
}
