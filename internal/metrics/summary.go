package metrics

import (
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/Veraticus/the-budget-must-balance/internal/store"
	"github.com/shopspring/decimal"
)

// GoalProgress pairs a goal with its derived percentage and status.
type GoalProgress struct {
	Goal          model.Goal
	Status        model.GoalStatus
	Percentage    decimal.Decimal
	DaysRemaining int
}

// GoalStats summarizes the goal collection as a whole.
type GoalStats struct {
	TotalSaved      decimal.Decimal
	AverageProgress decimal.Decimal
	Total           int
	Completed       int
}

// Summary is the full derived-metrics bundle consumers read alongside a
// state snapshot.
type Summary struct {
	CategoryTotals   map[string]TypeTotals
	MonthlyData      map[string]TypeTotals
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetBalance       decimal.Decimal
	Budgets          []BudgetProgress
	Goals            []GoalProgress
	GoalStats        GoalStats
	TransactionCount int
}

// Compute derives the summary bundle from a state snapshot as of now.
func Compute(state store.State, now time.Time) Summary {
	income := TotalIncome(state.Transactions)
	expenses := TotalExpenses(state.Transactions)

	return Summary{
		TotalIncome:      income,
		TotalExpenses:    expenses,
		NetBalance:       income.Sub(expenses),
		TransactionCount: len(state.Transactions),
		CategoryTotals:   CategoryTotals(state.Transactions),
		MonthlyData:      MonthlyData(state.Transactions),
		Budgets:          AllBudgetProgress(state.Budgets, state.Transactions, now),
		Goals:            allGoalProgress(state.Goals, now),
		GoalStats:        goalStats(state.Goals),
	}
}

func allGoalProgress(goals []model.Goal, now time.Time) []GoalProgress {
	out := make([]GoalProgress, len(goals))
	for i, g := range goals {
		out[i] = GoalProgress{
			Goal:          g,
			Status:        g.Status(now),
			Percentage:    g.Progress(),
			DaysRemaining: g.DaysRemaining(now),
		}
	}
	return out
}

func goalStats(goals []model.Goal) GoalStats {
	stats := GoalStats{Total: len(goals)}
	sum := decimal.Zero
	for _, g := range goals {
		if g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) && g.TargetAmount.Sign() > 0 {
			stats.Completed++
		}
		stats.TotalSaved = stats.TotalSaved.Add(g.CurrentAmount)
		sum = sum.Add(g.Progress())
	}
	if len(goals) > 0 {
		stats.AverageProgress = sum.Div(decimal.NewFromInt(int64(len(goals))))
	}
	return stats
}
