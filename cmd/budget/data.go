package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/the-budget-must-balance/internal/cli"
	"github.com/Veraticus/the-budget-must-balance/internal/tracker"
	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export data as JSON or CSV",
		Long: `Export the full dataset as a JSON document, or the transactions alone as
CSV with columns Date, Title, Amount, Type, Category.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			var w io.Writer = os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			payload := trk.ExportData()

			switch format {
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(payload); err != nil {
					return fmt.Errorf("failed to encode export: %w", err)
				}
			case "csv":
				if err := writeTransactionsCSV(w, payload); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q: expected json or csv", format)
			}

			if out != "" {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported to %s", out)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "json or csv")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")

	return cmd
}

// transactionRow is the CSV projection of one transaction.
type transactionRow struct {
	Date     string `csv:"Date"`
	Title    string `csv:"Title"`
	Amount   string `csv:"Amount"`
	Type     string `csv:"Type"`
	Category string `csv:"Category"`
}

func writeTransactionsCSV(w io.Writer, payload tracker.Payload) error {
	rows := make([]transactionRow, 0, len(payload.Transactions))
	for _, txn := range payload.Transactions {
		rows = append(rows, transactionRow{
			Date:     txn.Date.String(),
			Title:    txn.Title,
			Amount:   txn.Amount.String(),
			Type:     string(txn.Type),
			Category: txn.Category,
		})
	}

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csv.NewWriter(w))); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

func importCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import data from a JSON export",
		Long: `Merge a JSON export into the current data. Each top-level key
(transactions, budgets, goals, categories, user) is optional; absent keys
leave the corresponding data untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}

			var payload tracker.Payload
			if err := json.Unmarshal(data, &payload); err != nil {
				return fmt.Errorf("failed to parse %s: %w", file, err)
			}

			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := trk.ImportData(payload); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Import complete"))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON export file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all stored data",
		Long:  `Wipe every persisted slice and return to defaults. This cannot be undone.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				return fmt.Errorf("refusing to reset without --force")
			}

			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := trk.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("failed to reset: %w", err)
			}

			fmt.Println(cli.FormatInfo("All data has been reset"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm the reset")

	return cmd
}
