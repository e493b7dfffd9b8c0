package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply NAME",
	Short: "Record one real-world application of a soft skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := svc.LogApplication(ctx, args[0]); err != nil {
		return err
	}
	if err := saveAll(ctx); err != nil {
		return err
	}
	fmt.Printf("application logged for %q\n", args[0])
	return nil
}
