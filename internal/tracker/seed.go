package tracker

import (
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/shopspring/decimal"
)

// DemoTransactions is the fixed dataset shown to first-run users so the app
// opens with example data instead of a blank slate.
func DemoTransactions(now time.Time) []model.Transaction {
	return []model.Transaction{
		{
			ID:        "demo-txn-1",
			Title:     "Salary Payment",
			Amount:    decimal.NewFromInt(4200),
			Type:      model.TypeIncome,
			Category:  "Salary",
			Date:      model.NewDate(2024, time.January, 15),
			CreatedAt: now,
		},
		{
			ID:        "demo-txn-2",
			Title:     "Grocery Shopping",
			Amount:    decimal.NewFromFloat(85.50),
			Type:      model.TypeExpense,
			Category:  "Food & Dining",
			Date:      model.NewDate(2024, time.January, 14),
			CreatedAt: now,
		},
		{
			ID:        "demo-txn-3",
			Title:     "Freelance Work",
			Amount:    decimal.NewFromInt(750),
			Type:      model.TypeIncome,
			Category:  "Freelance",
			Date:      model.NewDate(2024, time.January, 13),
			CreatedAt: now,
		},
		{
			ID:        "demo-txn-4",
			Title:     "Gas Station",
			Amount:    decimal.NewFromFloat(45.20),
			Type:      model.TypeExpense,
			Category:  "Transportation",
			Date:      model.NewDate(2024, time.January, 12),
			CreatedAt: now,
		},
		{
			ID:        "demo-txn-5",
			Title:     "Coffee Shop",
			Amount:    decimal.NewFromFloat(12.50),
			Type:      model.TypeExpense,
			Category:  "Food & Dining",
			Date:      model.NewDate(2024, time.January, 11),
			CreatedAt: now,
		},
	}
}

// DemoGoals is the fixed goal dataset paired with DemoTransactions.
func DemoGoals(now time.Time) []model.Goal {
	return []model.Goal{
		{
			ID:            "demo-goal-1",
			Title:         "Emergency Fund",
			Description:   "Build a 6-month emergency fund for financial security",
			TargetAmount:  decimal.NewFromInt(15000),
			CurrentAmount: decimal.NewFromInt(8500),
			TargetDate:    model.NewDate(2024, time.December, 31),
			CreatedAt:     now,
		},
		{
			ID:            "demo-goal-2",
			Title:         "Vacation to Japan",
			Description:   "Save for a 2-week trip to Japan including flights and accommodation",
			TargetAmount:  decimal.NewFromInt(5000),
			CurrentAmount: decimal.NewFromInt(2100),
			TargetDate:    model.NewDate(2024, time.September, 1),
			CreatedAt:     now,
		},
		{
			ID:            "demo-goal-3",
			Title:         "New Laptop",
			Description:   "MacBook Pro for work and personal projects",
			TargetAmount:  decimal.NewFromInt(2500),
			CurrentAmount: decimal.NewFromInt(2500),
			TargetDate:    model.NewDate(2024, time.March, 15),
			CreatedAt:     now,
		},
	}
}
