package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress NAME VALUE",
	Short: "Update a skill's progress percentage (0-100)",
	Args:  cobra.ExactArgs(2),
	RunE:  runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("progress must be a number: %q", args[1])
	}
	if err := svc.UpdateProgress(ctx, args[0], value); err != nil {
		return err
	}
	if err := saveAll(ctx); err != nil {
		return err
	}
	fmt.Printf("progress for %q set to %g%%\n", args[0], value)
	return nil
}
