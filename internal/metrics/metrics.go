// Package metrics derives aggregate financial views from canonical state.
// Everything here is a pure, total function: empty inputs produce zero sums
// and empty maps, and no function mutates its arguments.
package metrics

import (
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/shopspring/decimal"
)

// TypeTotals accumulates income and expense amounts for one bucket.
type TypeTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

func (t TypeTotals) add(txn model.Transaction) TypeTotals {
	switch txn.Type {
	case model.TypeIncome:
		t.Income = t.Income.Add(txn.Amount)
	case model.TypeExpense:
		t.Expense = t.Expense.Add(txn.Amount)
	}
	return t
}

// TotalIncome sums the amounts of all income transactions.
func TotalIncome(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Type == model.TypeIncome {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// TotalExpenses sums the amounts of all expense transactions.
func TotalExpenses(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Type == model.TypeExpense {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// NetBalance is total income minus total expenses.
func NetBalance(txns []model.Transaction) decimal.Decimal {
	return TotalIncome(txns).Sub(TotalExpenses(txns))
}

// CategoryTotals accumulates income and expense per category name.
func CategoryTotals(txns []model.Transaction) map[string]TypeTotals {
	totals := make(map[string]TypeTotals)
	for _, t := range txns {
		totals[t.Category] = totals[t.Category].add(t)
	}
	return totals
}

// MonthlyData buckets income and expense by the transaction date's
// year-month, keyed YYYY-MM.
func MonthlyData(txns []model.Transaction) map[string]TypeTotals {
	totals := make(map[string]TypeTotals)
	for _, t := range txns {
		month := t.Date.YearMonth()
		totals[month] = totals[month].add(t)
	}
	return totals
}
