package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <kind> <name> <new-name>",
	Short: "Rename a named definition",
	Long: `Rename a named definition. References held by other definitions
follow the new name. Reserved names (GLOBAL, ALL) cannot be renamed.

Examples:
  csiapi rename patterns LIVE L
  csiapi rename frames 1 B1`,
	Args:              cobra.ExactArgs(3),
	ValidArgsFunction: completeKinds,
	RunE:              runRename,
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	k, err := lookupKind(args[0])
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
	if err := k.rename(s.model, args[1], args[2]); err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}
	fmt.Printf("Renamed %s %s to %s.\n", args[0], args[1], args[2])
	return nil
}
