package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexiusacademia/csiapi/internal/report"
	"github.com/spf13/cobra"
)

var (
	resultsExportFile  string
	resultsExportTitle string
)

var resultsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the model's results to Excel or PDF",
	Long: `Select every case and combination for output and write the model's
result tables. The output format follows the file extension:
  .xlsx  - every result table, one sheet each, in the host's layout
  .pdf   - a summary of case status, modal periods, base reactions and
           peak joint displacements

Examples:
  csiapi results export -o results.xlsx
  csiapi results export -o summary.pdf --title "Portal frame"`,
	RunE: runResultsExport,
}

func init() {
	resultsCmd.AddCommand(resultsExportCmd)

	resultsExportCmd.Flags().StringVarP(&resultsExportFile, "output", "o", "", "Output file (.xlsx or .pdf) [required]")
	resultsExportCmd.MarkFlagRequired("output")
	resultsExportCmd.Flags().StringVar(&resultsExportTitle, "title", "", "PDF report title")
}

func runResultsExport(cmd *cobra.Command, args []string) error {
	ext := strings.ToLower(filepath.Ext(resultsExportFile))
	if ext != ".xlsx" && ext != ".pdf" {
		return fmt.Errorf("unsupported output format %q (want .xlsx or .pdf)", ext)
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := report.SelectAll(s.model); err != nil {
		return err
	}
	tables, err := report.Collect(s.model)
	if err != nil {
		return err
	}

	var sum report.Summary
	if ext == ".pdf" {
		if sum, err = summary(s); err != nil {
			return err
		}
	}

	f, err := os.Create(resultsExportFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if ext == ".pdf" {
		err = report.WritePDF(f, sum, tables)
	} else {
		err = report.WriteWorkbook(f, tables)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", resultsExportFile, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Results exported to: %s\n", resultsExportFile)
	return nil
}

func summary(s *session) (report.Summary, error) {
	units, err := s.model.Units()
	if err != nil {
		return report.Summary{}, err
	}
	status, err := s.model.Analyze().CaseStatus()
	if err != nil {
		return report.Summary{}, err
	}
	return report.Summary{
		Title:   resultsExportTitle,
		Model:   s.name,
		Version: s.model.VersionString(),
		Units:   units.String(),
		Cases:   status,
		Date:    time.Now(),
	}, nil
}
