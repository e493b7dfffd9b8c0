package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice NAME HOURS",
	Short: "Log practice hours for a skill",
	Args:  cobra.ExactArgs(2),
	RunE:  runPractice,
}

func init() {
	rootCmd.AddCommand(practiceCmd)
}

func runPractice(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	hours, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("hours must be a number: %q", args[1])
	}
	if err := svc.LogPractice(ctx, args[0], hours); err != nil {
		return err
	}
	if err := saveAll(ctx); err != nil {
		return err
	}
	fmt.Printf("logged %gh for %q\n", hours, args[0])
	return nil
}
