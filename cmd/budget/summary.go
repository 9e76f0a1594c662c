package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/Veraticus/the-budget-must-balance/internal/cli"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show aggregate financial metrics",
		Long:  `Derive totals, per-category and per-month breakdowns from the recorded transactions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			state := trk.Snapshot()
			summary := trk.Summary()
			currency := state.User.Currency

			fmt.Println(cli.FormatTitle("Budget Summary"))
			fmt.Printf("Transactions:   %d\n", summary.TransactionCount)
			fmt.Printf("Total income:   %s\n", cli.SuccessStyle.Render(model.FormatAmount(summary.TotalIncome, currency)))
			fmt.Printf("Total expenses: %s\n", cli.ErrorStyle.Render(model.FormatAmount(summary.TotalExpenses, currency)))

			net := model.FormatAmount(summary.NetBalance, currency)
			if summary.NetBalance.Sign() < 0 {
				net = cli.ErrorStyle.Render(net)
			} else {
				net = cli.SuccessStyle.Render(net)
			}
			fmt.Printf("Net balance:    %s\n", net)

			if len(summary.MonthlyData) > 0 {
				fmt.Printf("\n%s %s\n", cli.ChartIcon, cli.BoldStyle.Render("By month"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				months := sortedKeys(summary.MonthlyData)
				for _, month := range months {
					totals := summary.MonthlyData[month]
					fmt.Fprintf(w, "%s\t+%s\t-%s\n", month,
						model.FormatAmount(totals.Income, currency),
						model.FormatAmount(totals.Expense, currency))
				}
				w.Flush()
			}

			if len(summary.CategoryTotals) > 0 {
				fmt.Printf("\n%s %s\n", cli.ChartIcon, cli.BoldStyle.Render("By category"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				categories := sortedKeys(summary.CategoryTotals)
				for _, category := range categories {
					totals := summary.CategoryTotals[category]
					fmt.Fprintf(w, "%s\t+%s\t-%s\n", category,
						model.FormatAmount(totals.Income, currency),
						model.FormatAmount(totals.Expense, currency))
				}
				w.Flush()
			}

			return nil
		},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
