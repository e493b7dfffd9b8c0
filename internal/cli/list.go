package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills ranked by mastery score",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	return printRanking(cmd.Context())
}

func printRanking(ctx context.Context) error {
	entries, err := svc.List(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no skills tracked yet")
		return nil
	}

	fmt.Printf("%-4s %-24s %-10s %-18s %9s %9s %8s\n",
		"#", "NAME", "KIND", "CATEGORY", "PROGRESS", "HOURS", "SCORE")
	for _, e := range entries {
		fmt.Printf("%-4d %-24s %-10s %-18s %8.1f%% %9.1f %8.2f\n",
			e.Rank, e.Name, e.Kind, e.Category, e.Progress, e.PracticeHours, e.Score)
	}
	fmt.Printf("\n%d skill(s)\n", len(entries))
	return nil
}
