package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/the-budget-must-balance/internal/cli"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage transaction categories",
		Long:  `Show or replace the income and expense category lists.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(setCategoriesCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			categories := trk.Snapshot().Categories
			fmt.Println(cli.TitleStyle.Render("Income"))
			for _, name := range categories.Income {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println(cli.TitleStyle.Render("Expense"))
			for _, name := range categories.Expense {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}
}

func setCategoriesCmd() *cobra.Command {
	var (
		income  string
		expense string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the category lists wholesale",
		Long: `Replace both category lists at once. Omitting a flag keeps the current list
for that side. Lists are comma-separated, e.g. --expense "Rent,Food,Travel".`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			categories := trk.Snapshot().Categories.Clone()
			if cmd.Flags().Changed("income") {
				categories.Income = splitList(income)
			}
			if cmd.Flags().Changed("expense") {
				categories.Expense = splitList(expense)
			}
			if categories.IsEmpty() {
				categories = model.DefaultCategories()
				fmt.Println(cli.FormatWarning("Both lists were empty; restored defaults"))
			}

			trk.SetCategories(categories)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Categories set: %d income, %d expense",
				len(categories.Income), len(categories.Expense))))
			return nil
		},
	}

	cmd.Flags().StringVar(&income, "income", "", "comma-separated income categories")
	cmd.Flags().StringVar(&expense, "expense", "", "comma-separated expense categories")

	return cmd
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
