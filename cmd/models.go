package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/csiapi/internal/store"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Manage stored models",
	Long: `List or remove the models kept in the configured store.

Examples:
  csiapi models
  csiapi models rm scratch`,
	Args: cobra.NoArgs,
	RunE: runModels,
}

var modelsRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a stored model",
	Args:  cobra.ExactArgs(1),
	RunE:  runModelsRm,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
	modelsCmd.AddCommand(modelsRmCmd)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return store.Open(cmd.Context(), cfg.Store)
}

func runModels(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	list, err := st.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No stored models.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Name\tVersion\tLocked\tUpdated\n")
	for _, mi := range list {
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", mi.Name, mi.Version, mi.Locked, mi.UpdatedAt)
	}
	return w.Flush()
}

func runModelsRm(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Removed model %s.\n", args[0])
	return nil
}
