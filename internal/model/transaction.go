// Package model defines the core domain types for the budget tracker.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a money movement.
type TransactionType string

const (
	// TypeIncome marks money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense marks money going out.
	TypeExpense TransactionType = "expense"
)

// IsValid reports whether the transaction type is a known value.
func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single dated money movement, tagged income or
// expense. Amount is always positive; direction comes from Type.
type Transaction struct {
	CreatedAt   time.Time       `json:"createdAt"`
	Date        Date            `json:"date"`
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}
