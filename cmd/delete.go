package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <kind> <name>",
	Short: "Delete a named definition",
	Long: `Delete a named definition. The host refuses to delete definitions
still in use, the last load pattern and reserved names.

Examples:
  csiapi delete combos NSCP3b
  csiapi delete coordsys LOCAL1`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeKinds,
	RunE:              runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
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
	if err := k.remove(s.model, args[1]); err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}
	fmt.Printf("Deleted %s %s.\n", args[0], args[1])
	return nil
}
