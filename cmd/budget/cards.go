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

func cardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Manage dashboard cards",
	}

	cmd.AddCommand(listCardsCmd())
	cmd.AddCommand(updateCardCmd())

	return cmd
}

func listCardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cards",
		RunE: func(cmd *cobra.Command, _ []string) error {
			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			state := trk.Snapshot()
			if len(state.Cards) == 0 {
				fmt.Println(cli.FormatInfo("No cards found."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("#"),
				cli.HeaderStyle.Render("Label"),
				cli.HeaderStyle.Render("Holder"),
				cli.HeaderStyle.Render("Number"),
				cli.HeaderStyle.Render("Expiry"),
				cli.HeaderStyle.Render("Balance"))

			for i, card := range state.Cards {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					i, card.Label, card.Holder, card.Number, card.Expiry,
					model.FormatAmount(card.Balance, state.User.Currency))
			}
			return nil
		},
	}
}

func updateCardCmd() *cobra.Command {
	var (
		index   int
		label   string
		holder  string
		number  string
		expiry  string
		balance string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the card at an index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			cards := trk.Snapshot().Cards
			if index < 0 || index >= len(cards) {
				return fmt.Errorf("card index %d out of range (have %d cards)", index, len(cards))
			}

			card := cards[index]
			if label != "" {
				card.Label = label
			}
			if holder != "" {
				card.Holder = holder
			}
			if number != "" {
				card.Number = number
			}
			if expiry != "" {
				card.Expiry = expiry
			}
			if balance != "" {
				parsed, err := decimal.NewFromString(balance)
				if err != nil {
					return fmt.Errorf("invalid balance %q: %w", balance, err)
				}
				card.Balance = parsed
			}

			trk.UpdateCard(index, card)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated card %d (%s)", index, card.Label)))
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "card position from 'budget cards list'")
	cmd.Flags().StringVar(&label, "label", "", "card label")
	cmd.Flags().StringVar(&holder, "holder", "", "card holder name")
	cmd.Flags().StringVar(&number, "number", "", "masked card number")
	cmd.Flags().StringVar(&expiry, "expiry", "", "expiry MM/YY")
	cmd.Flags().StringVar(&balance, "balance", "", "card balance")

	return cmd
}
