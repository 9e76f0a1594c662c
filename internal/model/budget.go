package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the recurring window a budget ceiling applies to.
type BudgetPeriod string

const (
	// PeriodWeekly resets every calendar week, starting Sunday.
	PeriodWeekly BudgetPeriod = "weekly"
	// PeriodMonthly resets every calendar month.
	PeriodMonthly BudgetPeriod = "monthly"
	// PeriodYearly resets every calendar year.
	PeriodYearly BudgetPeriod = "yearly"
)

// IsValid reports whether the period is a known value.
func (p BudgetPeriod) IsValid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Budget is a spending ceiling for one expense category over a recurring
// period. Spend against the ceiling is never stored; it is derived from
// transactions falling inside the current period window. Duplicate budgets
// for the same (category, period) pair are permitted and all retained.
type Budget struct {
	CreatedAt time.Time       `json:"createdAt"`
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Period    BudgetPeriod    `json:"period"`
	Amount    decimal.Decimal `json:"amount"`
}
