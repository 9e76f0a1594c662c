package model

import "github.com/shopspring/decimal"

// Card is a payment card shown on the dashboard. Purely informational; no
// card talks to a bank.
type Card struct {
	Label   string          `json:"label"`
	Holder  string          `json:"holder"`
	Number  string          `json:"number"`
	Expiry  string          `json:"expiry"`
	Balance decimal.Decimal `json:"balance"`
}

// DefaultCards returns the demo cards shown before the user edits their own.
func DefaultCards() []Card {
	return []Card{
		{
			Label:   "Primary Card",
			Holder:  "Personal Budget",
			Number:  "**** **** **** 4242",
			Expiry:  "12/27",
			Balance: decimal.NewFromInt(3250),
		},
		{
			Label:   "Savings Card",
			Holder:  "Personal Budget",
			Number:  "**** **** **** 8810",
			Expiry:  "06/26",
			Balance: decimal.NewFromInt(10400),
		},
	}
}
