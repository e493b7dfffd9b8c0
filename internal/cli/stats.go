package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics over the whole collection",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	return printStats(cmd.Context())
}

func printStats(ctx context.Context) error {
	st, err := svc.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Skills tracked:       %d\n", st.Count)
	fmt.Printf("  Technical:          %d\n", st.TechnicalCount)
	fmt.Printf("  Soft:               %d\n", st.SoftCount)
	fmt.Printf("Average mastery:      %.2f/100\n", st.MeanScore)
	fmt.Printf("Total practice hours: %.1fh\n", st.TotalPracticeHours)
	if st.Highest != nil {
		fmt.Printf("Highest:              %s (%.2f)\n", st.Highest.Name, st.Highest.Score)
	}
	if st.Lowest != nil {
		fmt.Printf("Lowest:               %s (%.2f)\n", st.Lowest.Name, st.Lowest.Score)
	}
	return nil
}
