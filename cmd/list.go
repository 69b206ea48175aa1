package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listDetail bool

var listCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "List named definitions of the model",
	Long: `List the named definitions of one kind in the stored model.

Kinds:
  ` + strings.Join(kindNames(), ", ") + `

Examples:
  csiapi list patterns
  csiapi list frames --detail`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeKinds,
	RunE:              runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVarP(&listDetail, "detail", "d", false, "Show a summary of each definition")
}

func runList(cmd *cobra.Command, args []string) error {
	k, err := lookupKind(args[0])
	if err != nil {
		return err
	}
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	names, err := k.list(s.model)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Printf("No %s defined in %s.\n", strings.ToLower(args[0]), s.name)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		if !listDetail || k.detail == nil {
			fmt.Fprintf(w, "%s\n", name)
			continue
		}
		d, err := k.detail(s.model, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", name, d)
	}
	return w.Flush()
}
