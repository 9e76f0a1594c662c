package metrics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/the-budget-must-balance/internal/model"
)

func txn(id, title string, amount float64, typ model.TransactionType, category, date string) model.Transaction {
	d, err := model.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{
		ID:       id,
		Title:    title,
		Amount:   decimal.NewFromFloat(amount),
		Type:     typ,
		Category: category,
		Date:     d,
	}
}

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		txn("1", "Salary", 4200, model.TypeIncome, "Salary", "2024-01-15"),
		txn("2", "Groceries", 85.50, model.TypeExpense, "Food & Dining", "2024-01-14"),
		txn("3", "Freelance", 750, model.TypeIncome, "Freelance", "2024-02-13"),
		txn("4", "Gas", 45.20, model.TypeExpense, "Transportation", "2024-02-12"),
		txn("5", "Coffee", 12.50, model.TypeExpense, "Food & Dining", "2024-01-11"),
	}
}

func TestTotals(t *testing.T) {
	txns := sampleTransactions()

	income := TotalIncome(txns)
	expenses := TotalExpenses(txns)
	net := NetBalance(txns)

	assert.True(t, decimal.NewFromInt(4950).Equal(income), "income = %s", income)
	assert.True(t, decimal.NewFromFloat(143.20).Equal(expenses), "expenses = %s", expenses)
	assert.True(t, income.Sub(expenses).Equal(net), "net = %s", net)
}

func TestTotalsEmpty(t *testing.T) {
	assert.True(t, TotalIncome(nil).IsZero())
	assert.True(t, TotalExpenses(nil).IsZero())
	assert.True(t, NetBalance(nil).IsZero())
	assert.Empty(t, CategoryTotals(nil))
	assert.Empty(t, MonthlyData(nil))
}

func TestCategoryTotals(t *testing.T) {
	totals := CategoryTotals(sampleTransactions())

	food := totals["Food & Dining"]
	assert.True(t, decimal.NewFromInt(98).Equal(food.Expense), "food expense = %s", food.Expense)
	assert.True(t, food.Income.IsZero())

	salary := totals["Salary"]
	assert.True(t, decimal.NewFromInt(4200).Equal(salary.Income))

	// Category buckets partition the totals.
	incomeSum, expenseSum := decimal.Zero, decimal.Zero
	for _, tt := range totals {
		incomeSum = incomeSum.Add(tt.Income)
		expenseSum = expenseSum.Add(tt.Expense)
	}
	assert.True(t, TotalIncome(sampleTransactions()).Equal(incomeSum))
	assert.True(t, TotalExpenses(sampleTransactions()).Equal(expenseSum))
}

func TestMonthlyData(t *testing.T) {
	monthly := MonthlyData(sampleTransactions())

	assert.Len(t, monthly, 2)

	jan := monthly["2024-01"]
	assert.True(t, decimal.NewFromInt(4200).Equal(jan.Income), "jan income = %s", jan.Income)
	assert.True(t, decimal.NewFromInt(98).Equal(jan.Expense), "jan expense = %s", jan.Expense)

	feb := monthly["2024-02"]
	assert.True(t, decimal.NewFromInt(750).Equal(feb.Income))
	assert.True(t, decimal.NewFromFloat(45.20).Equal(feb.Expense))
}

func TestPeriodWindow(t *testing.T) {
	// Wednesday 2024-01-17.
	now := time.Date(2024, time.January, 17, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		period model.BudgetPeriod
		start  time.Time
		end    time.Time
	}{
		{
			name:   "weekly starts on Sunday",
			period: model.PeriodWeekly,
			start:  time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC),
			end:    time.Date(2024, time.January, 21, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "monthly follows the calendar",
			period: model.PeriodMonthly,
			start:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			end:    time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "yearly follows the calendar",
			period: model.PeriodYearly,
			start:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			end:    time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PeriodWindow(now, tt.period)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestPeriodWindowOnSunday(t *testing.T) {
	// 2024-01-14 is itself a Sunday; the window starts that same day.
	now := time.Date(2024, time.January, 14, 8, 0, 0, 0, time.UTC)
	start, end := PeriodWindow(now, model.PeriodWeekly)
	assert.Equal(t, time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.January, 21, 0, 0, 0, 0, time.UTC), end)
}

func TestProgressFor(t *testing.T) {
	now := time.Date(2024, time.January, 20, 12, 0, 0, 0, time.UTC)
	budget := model.Budget{
		ID:       "b1",
		Category: "Food & Dining",
		Amount:   decimal.NewFromInt(500),
		Period:   model.PeriodMonthly,
	}

	txns := []model.Transaction{
		txn("1", "Groceries", 85.50, model.TypeExpense, "Food & Dining", "2024-01-14"),
		txn("2", "Coffee", 12.50, model.TypeExpense, "Food & Dining", "2024-01-11"),
		// Wrong category.
		txn("3", "Gas", 45.20, model.TypeExpense, "Transportation", "2024-01-12"),
		// Income in the same category does not count as spend.
		txn("4", "Refund", 20, model.TypeIncome, "Food & Dining", "2024-01-13"),
		// Outside the current month.
		txn("5", "Dinner", 60, model.TypeExpense, "Food & Dining", "2023-10-15"),
	}

	progress := ProgressFor(budget, txns, now)

	assert.True(t, decimal.NewFromInt(98).Equal(progress.Spent), "spent = %s", progress.Spent)
	assert.True(t, decimal.NewFromInt(402).Equal(progress.Remaining))
	assert.False(t, progress.IsOverBudget)
	assert.True(t, decimal.NewFromFloat(19.6).Equal(progress.Percentage), "pct = %s", progress.Percentage)
}

func TestProgressForOverBudget(t *testing.T) {
	now := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	budget := model.Budget{
		ID:       "b1",
		Category: "Food & Dining",
		Amount:   decimal.NewFromInt(50),
		Period:   model.PeriodMonthly,
	}
	txns := []model.Transaction{
		txn("1", "Groceries", 85.50, model.TypeExpense, "Food & Dining", "2024-01-14"),
	}

	progress := ProgressFor(budget, txns, now)

	assert.True(t, progress.IsOverBudget)
	assert.True(t, progress.Remaining.IsNegative())
}

func TestProgressForZeroAmountBudget(t *testing.T) {
	now := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	budget := model.Budget{ID: "b1", Category: "Food & Dining", Period: model.PeriodMonthly}
	txns := []model.Transaction{
		txn("1", "Coffee", 12.50, model.TypeExpense, "Food & Dining", "2024-01-11"),
	}

	progress := ProgressFor(budget, txns, now)

	assert.True(t, progress.Percentage.IsZero(), "zero-amount budget has zero percentage")
	assert.True(t, progress.IsOverBudget)
}

func TestProgressForWindowBoundaries(t *testing.T) {
	// Week of Sunday 2024-01-14 through Saturday 2024-01-20.
	now := time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC)
	budget := model.Budget{
		ID:       "b1",
		Category: "Food & Dining",
		Amount:   decimal.NewFromInt(100),
		Period:   model.PeriodWeekly,
	}
	txns := []model.Transaction{
		txn("start", "On window start", 10, model.TypeExpense, "Food & Dining", "2024-01-14"),
		txn("end", "On next window start", 20, model.TypeExpense, "Food & Dining", "2024-01-21"),
	}

	progress := ProgressFor(budget, txns, now)

	assert.True(t, decimal.NewFromInt(10).Equal(progress.Spent), "start day counted, end day excluded; spent = %s", progress.Spent)
}

func TestAllBudgetProgress(t *testing.T) {
	now := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	budgets := []model.Budget{
		{ID: "b1", Category: "Food & Dining", Amount: decimal.NewFromInt(500), Period: model.PeriodMonthly},
		{ID: "b2", Category: "Transportation", Amount: decimal.NewFromInt(200), Period: model.PeriodMonthly},
	}

	out := AllBudgetProgress(budgets, nil, now)

	assert.Len(t, out, 2)
	assert.Equal(t, "b1", out[0].Budget.ID)
	assert.True(t, out[0].Spent.IsZero())
}
