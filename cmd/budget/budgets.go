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

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage category budgets",
		Long:  `Set spending ceilings per expense category and see spend against them.`,
	}

	cmd.AddCommand(addBudgetCmd())
	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(deleteBudgetCmd())

	return cmd
}

func addBudgetCmd() *cobra.Command {
	var (
		category string
		amount   string
		period   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a budget ceiling",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			if parsed.Sign() <= 0 {
				return fmt.Errorf("amount must be positive, got %s", parsed)
			}

			p := model.BudgetPeriod(period)
			if !p.IsValid() {
				return fmt.Errorf("invalid period %q: expected weekly, monthly or yearly", period)
			}

			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			budget := trk.AddBudget(model.Budget{
				Category: category,
				Amount:   parsed,
				Period:   p,
			})
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %q: %s per %s",
				budget.Category, budget.Amount.StringFixed(2), budget.Period)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "expense category (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "budget ceiling (required)")
	cmd.Flags().StringVar(&period, "period", "monthly", "weekly, monthly or yearly")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with current spend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			summary := trk.Summary()
			if len(summary.Budgets) == 0 {
				fmt.Println(cli.FormatInfo("No budgets found. Use 'budget budgets add' to create one."))
				return nil
			}

			currency := trk.Snapshot().User.Currency
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Period"),
				cli.HeaderStyle.Render("Ceiling"),
				cli.HeaderStyle.Render("Spent"),
				cli.HeaderStyle.Render("Used"))

			for _, bp := range summary.Budgets {
				used := bp.Percentage.StringFixed(1) + "%"
				if bp.IsOverBudget {
					used = cli.ErrorStyle.Render(used + " over budget")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					shortID(bp.Budget.ID),
					bp.Budget.Category,
					bp.Budget.Period,
					model.FormatAmount(bp.Budget.Amount, currency),
					model.FormatAmount(bp.Spent, currency),
					used)
			}

			return nil
		},
	}
}

func deleteBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			for _, b := range trk.Snapshot().Budgets {
				if b.ID == args[0] || shortID(b.ID) == args[0] {
					trk.DeleteBudget(b.ID)
					fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted budget for %q", b.Category)))
					return nil
				}
			}
			return fmt.Errorf("no budget with id %q", args[0])
		},
	}
}
