package metrics

import (
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/shopspring/decimal"
)

// BudgetProgress is the derived spend position of one budget for the current
// instance of its period.
type BudgetProgress struct {
	Budget       model.Budget
	Spent        decimal.Decimal
	Remaining    decimal.Decimal
	Percentage   decimal.Decimal
	IsOverBudget bool
}

// PeriodWindow returns the half-open [start, end) window of the current
// period instance containing now. Weeks start on Sunday; months and years
// follow the calendar.
func PeriodWindow(now time.Time, period model.BudgetPeriod) (time.Time, time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch period {
	case model.PeriodWeekly:
		start := day.AddDate(0, 0, -int(day.Weekday()))
		return start, start.AddDate(0, 0, 7)
	case model.PeriodYearly:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)
	default: // monthly
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	}
}

// ProgressFor computes spend against one budget: expense transactions in the
// budget's category whose date falls in the current period window.
func ProgressFor(budget model.Budget, txns []model.Transaction, now time.Time) BudgetProgress {
	start, end := PeriodWindow(now, budget.Period)

	spent := decimal.Zero
	for _, t := range txns {
		if t.Type != model.TypeExpense || t.Category != budget.Category {
			continue
		}
		if t.Date.Before(start) || !t.Date.Before(end) {
			continue
		}
		spent = spent.Add(t.Amount)
	}

	progress := BudgetProgress{
		Budget:       budget,
		Spent:        spent,
		Remaining:    budget.Amount.Sub(spent),
		IsOverBudget: spent.GreaterThan(budget.Amount),
	}
	if budget.Amount.Sign() > 0 {
		progress.Percentage = spent.Div(budget.Amount).Mul(hundred)
	}
	return progress
}

// AllBudgetProgress computes progress for every budget against the same
// transaction list.
func AllBudgetProgress(budgets []model.Budget, txns []model.Transaction, now time.Time) []BudgetProgress {
	out := make([]BudgetProgress, len(budgets))
	for i, b := range budgets {
		out[i] = ProgressFor(b, txns, now)
	}
	return out
}

var hundred = decimal.NewFromInt(100)
