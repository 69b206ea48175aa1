package cmd

import (
	"fmt"

	"github.com/alexiusacademia/csiapi/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	plotFunctionExportFile string
	plotFunctionWidth      int
	plotFunctionHeight     int
)

var plotFunctionCmd = &cobra.Command{
	Use:   "function <name>",
	Short: "Plot a function's values",
	Long: `Plot the values of a function defined in the stored model. Without
--output the function is drawn in the terminal.

Examples:
  csiapi plot function UNIFRS
  csiapi plot function RS -o rs.png`,
	Args: cobra.ExactArgs(1),
	RunE: runPlotFunction,
}

func init() {
	plotCmd.AddCommand(plotFunctionCmd)

	plotFunctionCmd.Flags().StringVarP(&plotFunctionExportFile, "output", "o", "", "Export plot to file (png, svg, pdf)")
	plotFunctionCmd.Flags().IntVar(&plotFunctionWidth, "width", 60, "Terminal plot width in columns")
	plotFunctionCmd.Flags().IntVar(&plotFunctionHeight, "height", 15, "Terminal plot height in rows")
}

func runPlotFunction(cmd *cobra.Command, args []string) error {
	name := args[0]
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	funcs := s.model.Functions()
	t, err := funcs.Type(name)
	if err != nil {
		return err
	}
	pts, err := funcs.Values(name)
	if err != nil {
		return err
	}

	if plotFunctionExportFile != "" {
		if err := diagram.ExportFunction(name, t, pts, plotFunctionExportFile); err != nil {
			return fmt.Errorf("exporting plot: %w", err)
		}
		fmt.Printf("Function plot exported to: %s\n", plotFunctionExportFile)
		return nil
	}

	fmt.Println()
	fmt.Println(diagram.ASCIIFunction(fmt.Sprintf("%s (%s)", name, t), pts, plotFunctionWidth, plotFunctionHeight))
	fmt.Println()
	return nil
}
