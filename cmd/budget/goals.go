package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Veraticus/the-budget-must-balance/internal/cli"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
		Long:  `Create savings goals, contribute toward them, and track progress against deadlines.`,
	}

	cmd.AddCommand(addGoalCmd())
	cmd.AddCommand(listGoalsCmd())
	cmd.AddCommand(contributeGoalCmd())
	cmd.AddCommand(completeGoalCmd())
	cmd.AddCommand(deleteGoalCmd())

	return cmd
}

func addGoalCmd() *cobra.Command {
	var (
		title       string
		target      string
		current     string
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a savings goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetAmount, err := decimal.NewFromString(target)
			if err != nil {
				return fmt.Errorf("invalid target amount %q: %w", target, err)
			}
			if targetAmount.Sign() <= 0 {
				return fmt.Errorf("target amount must be positive, got %s", targetAmount)
			}

			currentAmount := decimal.Zero
			if current != "" {
				currentAmount, err = decimal.NewFromString(current)
				if err != nil {
					return fmt.Errorf("invalid current amount %q: %w", current, err)
				}
				if currentAmount.Sign() < 0 {
					return fmt.Errorf("current amount cannot be negative, got %s", currentAmount)
				}
			}

			targetDate, err := model.ParseDate(date)
			if err != nil {
				return err
			}

			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			goal := trk.AddGoal(model.Goal{
				Title:         title,
				Description:   description,
				TargetAmount:  targetAmount,
				CurrentAmount: currentAmount,
				TargetDate:    targetDate,
			})
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Goal %q: save %s by %s",
				goal.Title, goal.TargetAmount.StringFixed(2), goal.TargetDate)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "goal title (required)")
	cmd.Flags().StringVar(&target, "target", "", "target amount (required)")
	cmd.Flags().StringVar(&current, "current", "", "already-saved amount (default 0)")
	cmd.Flags().StringVar(&date, "date", "", "target date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&description, "description", "", "optional free text")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func listGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with progress and status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			summary := trk.Summary()
			if len(summary.Goals) == 0 {
				fmt.Println(cli.FormatInfo("No goals found. Use 'budget goals add' to create one."))
				return nil
			}

			currency := trk.Snapshot().User.Currency
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Title"),
				cli.HeaderStyle.Render("Saved"),
				cli.HeaderStyle.Render("Target"),
				cli.HeaderStyle.Render("Progress"),
				cli.HeaderStyle.Render("Status"))

			for _, gp := range summary.Goals {
				status := string(gp.Status)
				switch gp.Status {
				case model.StatusCompleted:
					status = cli.SuccessStyle.Render(status)
				case model.StatusOverdue:
					status = cli.ErrorStyle.Render(status)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					shortID(gp.Goal.ID),
					gp.Goal.Title,
					model.FormatAmount(gp.Goal.CurrentAmount, currency),
					model.FormatAmount(gp.Goal.TargetAmount, currency),
					gp.Percentage.StringFixed(1)+"%",
					status)
			}

			fmt.Printf("\n%s %d of %d goals completed, %s saved in total\n",
				cli.TargetIcon,
				summary.GoalStats.Completed,
				summary.GoalStats.Total,
				model.FormatAmount(summary.GoalStats.TotalSaved, currency))
			return nil
		},
	}
}

func contributeGoalCmd() *cobra.Command {
	var amount string

	cmd := &cobra.Command{
		Use:   "contribute <id>",
		Short: "Add a contribution to a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			if parsed.Sign() <= 0 {
				return fmt.Errorf("amount must be positive, got %s", parsed)
			}

			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			id, ok := resolveGoalID(trk.Snapshot().Goals, args[0])
			if !ok {
				return fmt.Errorf("no goal with id %q", args[0])
			}

			trk.ContributeToGoal(id, parsed)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s to goal", parsed.StringFixed(2))))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "contribution amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func completeGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a goal completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			id, ok := resolveGoalID(trk.Snapshot().Goals, args[0])
			if !ok {
				return fmt.Errorf("no goal with id %q", args[0])
			}

			trk.CompleteGoal(id)
			fmt.Println(cli.FormatSuccess("Congratulations! Goal completed!"))
			return nil
		},
	}
}

func deleteGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			id, ok := resolveGoalID(trk.Snapshot().Goals, args[0])
			if !ok {
				return fmt.Errorf("no goal with id %q", args[0])
			}

			trk.DeleteGoal(id)
			fmt.Println(cli.FormatSuccess("Goal deleted"))
			return nil
		},
	}
}

func resolveGoalID(goals []model.Goal, id string) (string, bool) {
	for _, g := range goals {
		if g.ID == id || shortID(g.ID) == id {
			return g.ID, true
		}
	}
	return "", false
}
