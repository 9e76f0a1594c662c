package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/the-budget-must-balance/internal/cli"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transactions"},
		Short:   "Record and manage transactions",
		Long:    `Add, list, update, and delete income and expense transactions.`,
	}

	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(updateTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

func addTransactionCmd() *cobra.Command {
	var (
		title       string
		amount      string
		txnType     string
		category    string
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			txn, err := buildTransaction(title, amount, txnType, category, date, description)
			if err != nil {
				return err
			}

			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			// Category membership is a soft constraint; warn but accept.
			if !trk.Snapshot().Categories.Contains(txn.Type, txn.Category) {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("%q is not a known %s category", txn.Category, txn.Type)))
			}

			stamped := trk.AddTransaction(txn)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %q (%s) as %s",
				stamped.Type, stamped.Title, stamped.Amount.StringFixed(2), stamped.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "display title (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "positive amount, e.g. 4.50 (required)")
	cmd.Flags().StringVar(&txnType, "type", "expense", "income or expense")
	cmd.Flags().StringVar(&category, "category", "", "category name (required)")
	cmd.Flags().StringVar(&date, "date", "", "calendar date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&description, "description", "", "optional free text")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var filterType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			state := trk.Snapshot()
			txns := state.Transactions
			if filterType != "" {
				t := model.TransactionType(filterType)
				if !t.IsValid() {
					return fmt.Errorf("invalid type %q: expected income or expense", filterType)
				}
				filtered := make([]model.Transaction, 0, len(txns))
				for _, txn := range txns {
					if txn.Type == t {
						filtered = append(filtered, txn)
					}
				}
				txns = filtered
			}

			if len(txns) == 0 {
				fmt.Println(cli.FormatInfo("No transactions found. Use 'budget tx add' to record one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Title"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Amount"))

			for _, txn := range txns {
				amount := model.FormatAmount(txn.Amount, state.User.Currency)
				if txn.Type == model.TypeExpense {
					amount = "-" + amount
				} else {
					amount = "+" + amount
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					shortID(txn.ID), txn.Date, txn.Title, txn.Type, txn.Category, amount)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&filterType, "type", "", "filter by type (income or expense)")
	return cmd
}

func updateTransactionCmd() *cobra.Command {
	var (
		title       string
		amount      string
		txnType     string
		category    string
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a transaction by id",
		Long:  `Replace the transaction wholesale. Every field must be provided; there is no partial patch.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txn, err := buildTransaction(title, amount, txnType, category, date, description)
			if err != nil {
				return err
			}

			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			existing, ok := findTransaction(trk.Snapshot().Transactions, args[0])
			if !ok {
				return fmt.Errorf("no transaction with id %q", args[0])
			}
			txn.ID = existing.ID
			txn.CreatedAt = existing.CreatedAt

			trk.UpdateTransaction(txn)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated transaction %s", shortID(txn.ID))))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "display title (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "positive amount (required)")
	cmd.Flags().StringVar(&txnType, "type", "expense", "income or expense")
	cmd.Flags().StringVar(&category, "category", "", "category name (required)")
	cmd.Flags().StringVar(&date, "date", "", "calendar date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&description, "description", "", "optional free text")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			existing, ok := findTransaction(trk.Snapshot().Transactions, args[0])
			if !ok {
				return fmt.Errorf("no transaction with id %q", args[0])
			}

			trk.DeleteTransaction(existing.ID)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted %q", existing.Title)))
			return nil
		},
	}
}

// buildTransaction validates the flag inputs into a transaction record.
func buildTransaction(title, amount, txnType, category, date, description string) (model.Transaction, error) {
	var txn model.Transaction

	if strings.TrimSpace(title) == "" {
		return txn, fmt.Errorf("title cannot be empty")
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return txn, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if parsed.Sign() <= 0 {
		return txn, fmt.Errorf("amount must be positive, got %s", parsed)
	}

	t := model.TransactionType(txnType)
	if !t.IsValid() {
		return txn, fmt.Errorf("invalid type %q: expected income or expense", txnType)
	}

	var when model.Date
	if date == "" {
		when = model.DateOf(timeNow())
	} else {
		when, err = model.ParseDate(date)
		if err != nil {
			return txn, err
		}
	}

	return model.Transaction{
		Title:       strings.TrimSpace(title),
		Amount:      parsed,
		Type:        t,
		Category:    category,
		Date:        when,
		Description: description,
	}, nil
}

// findTransaction resolves a full or shortened id against the list.
func findTransaction(txns []model.Transaction, id string) (model.Transaction, bool) {
	for _, txn := range txns {
		if txn.ID == id || shortID(txn.ID) == id {
			return txn, true
		}
	}
	return model.Transaction{}, false
}

// shortID abbreviates UUIDs for display; short ids remain accepted as input.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
