package main

import (
	"fmt"

	"github.com/Veraticus/the-budget-must-balance/internal/cli"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/spf13/cobra"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the local profile",
	}

	cmd.AddCommand(showUserCmd())
	cmd.AddCommand(setUserCmd())

	return cmd
}

func showUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			user := trk.Snapshot().User
			fmt.Printf("Name:     %s\n", user.Name)
			fmt.Printf("Email:    %s\n", user.Email)
			fmt.Printf("Currency: %s (%s)\n", user.Currency, model.CurrencySymbol(user.Currency))
			return nil
		},
	}
}

func setUserCmd() *cobra.Command {
	var (
		name     string
		email    string
		currency string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if currency != "" {
				known := false
				for _, c := range model.Currencies {
					if c.Code == currency {
						known = true
						break
					}
				}
				if !known {
					return fmt.Errorf("unknown currency code %q", currency)
				}
			}

			trk, cleanup, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			trk.UpdateUser(model.User{Name: name, Email: email, Currency: currency})
			fmt.Println(cli.FormatSuccess("Profile updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code (USD, EUR, GBP, JPY, CAD, AUD, LKR)")

	return cmd
}
