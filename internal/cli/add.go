package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/mastery/internal/domain/skill"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new skill",
}

var addTechnicalCmd = &cobra.Command{
	Use:   "technical NAME",
	Short: "Add a technical skill",
	Long: `Add a technical skill with a fixed 1-10 difficulty rating.

Example:
  mastery add technical "Go" --category Programming --difficulty 7`,
	Args: cobra.ExactArgs(1),
	RunE: runAddTechnical,
}

var addSoftCmd = &cobra.Command{
	Use:   "soft NAME",
	Short: "Add a soft skill",
	Long: `Add a soft skill, optionally seeded with past real-world applications.

Example:
  mastery add soft "Public Speaking" --category Communication --applications 3`,
	Args: cobra.ExactArgs(1),
	RunE: runAddSoft,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.AddCommand(addTechnicalCmd)
	addCmd.AddCommand(addSoftCmd)

	addTechnicalCmd.Flags().StringP("category", "c", "", "skill category, e.g. Programming, DevOps")
	addTechnicalCmd.Flags().IntP("difficulty", "d", 5, "difficulty rating, 1-10")
	addSoftCmd.Flags().StringP("category", "c", "", "skill category, e.g. Communication, Leadership")
	addSoftCmd.Flags().IntP("applications", "a", 0, "real-world applications so far")
}

func runAddTechnical(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	category, _ := cmd.Flags().GetString("category")
	difficulty, _ := cmd.Flags().GetInt("difficulty")

	sk, err := skill.NewTechnical(args[0], category, difficulty)
	if err != nil {
		return err
	}
	if err := svc.Add(ctx, sk); err != nil {
		return err
	}
	if err := saveAll(ctx); err != nil {
		return err
	}
	fmt.Printf("technical skill %q added\n", sk.Name())
	return nil
}

func runAddSoft(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	category, _ := cmd.Flags().GetString("category")
	applications, _ := cmd.Flags().GetInt("applications")

	sk, err := skill.NewSoft(args[0], category, applications)
	if err != nil {
		return err
	}
	if err := svc.Add(ctx, sk); err != nil {
		return err
	}
	if err := saveAll(ctx); err != nil {
		return err
	}
	fmt.Printf("soft skill %q added\n", sk.Name())
	return nil
}
