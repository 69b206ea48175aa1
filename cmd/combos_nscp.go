package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/csiapi/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	nscpPrefix     string
	nscpSimplified bool
	nscpReplace    bool
	nscpDryRun     bool
)

var combosNSCPCmd = &cobra.Command{
	Use:   "nscp",
	Short: "Define NSCP 2015 load combinations",
	Long: `Define linear additive combinations for the NSCP 2015 (Section 203.3)
strength design load combinations.

Load patterns are mapped by their type:
  D  - Dead and super dead patterns
  L  - Live and reducible live patterns
  Lr - Roof live patterns
  W  - Wind patterns
  E  - Quake patterns

A linear static case is defined for every mapped pattern that has none.
Combinations needing wind or earthquake loads the model does not have are
skipped, as are combinations identical to one already generated.

Examples:
  csiapi combos nscp
  csiapi combos nscp --prefix ULS --replace
  csiapi combos nscp --simplified --dry-run`,
	RunE: runCombosNSCP,
}

func init() {
	combosCmd.AddCommand(combosNSCPCmd)

	combosNSCPCmd.Flags().StringVarP(&nscpPrefix, "prefix", "p", "NSCP", "Combination name prefix")
	combosNSCPCmd.Flags().BoolVarP(&nscpSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
	combosNSCPCmd.Flags().BoolVar(&nscpReplace, "replace", false, "Replace existing combinations with the same name")
	combosNSCPCmd.Flags().BoolVar(&nscpDryRun, "dry-run", false, "Print the combinations without defining them")
}

func runCombosNSCP(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	if !nscpDryRun {
		if err := s.unlock(); err != nil {
			return err
		}
	}
	combos, err := nscp.Generate(s.model, nscp.Options{
		Prefix:     nscpPrefix,
		Simplified: nscpSimplified,
		Replace:    nscpReplace,
		DryRun:     nscpDryRun,
	})
	if err != nil {
		return err
	}
	if !nscpDryRun {
		if err := s.save(); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          NSCP 2015 LOAD COMBINATIONS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name\tNSCP\tItems\n")
	fmt.Fprintf(w, "  ────\t────\t─────\n")
	for _, c := range combos {
		items := make([]string, len(c.Items))
		for i, it := range c.Items {
			items[i] = fmt.Sprintf("%g %s", it.Scale, it.Name)
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", c.Name, c.Description, strings.Join(items, " + "))
	}
	w.Flush()
	fmt.Println()

	if nscpDryRun {
		fmt.Printf("  Dry run: %d combinations not defined.\n", len(combos))
	} else {
		fmt.Printf("  Defined %d combinations in %s.\n", len(combos), s.name)
	}
	fmt.Println()
	return nil
}
