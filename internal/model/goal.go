package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus is the derived lifecycle state of a savings goal. It is never
// stored; compute it with Goal.Status.
type GoalStatus string

const (
	// StatusCompleted means the saved amount reached the target.
	StatusCompleted GoalStatus = "completed"
	// StatusOverdue means the target date passed before completion.
	StatusOverdue GoalStatus = "overdue"
	// StatusInProgress means the goal is still being saved toward.
	StatusInProgress GoalStatus = "in-progress"
)

// Goal is a savings target with a deadline and progress tracking.
// CurrentAmount may exceed TargetAmount; the store accepts it as entered.
type Goal struct {
	CreatedAt     time.Time       `json:"createdAt"`
	TargetDate    Date            `json:"targetDate"`
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
}

var hundred = decimal.NewFromInt(100)

// Progress returns the percentage saved toward the target, clamped to
// [0, 100]. A zero or negative target yields 0 rather than dividing by zero.
func (g Goal) Progress() decimal.Decimal {
	if g.TargetAmount.Sign() <= 0 {
		return decimal.Zero
	}
	pct := g.CurrentAmount.Div(g.TargetAmount).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	if pct.Sign() < 0 {
		return decimal.Zero
	}
	return pct
}

// Status derives the goal's lifecycle state as of the given instant.
func (g Goal) Status(now time.Time) GoalStatus {
	if g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) && g.TargetAmount.Sign() > 0 {
		return StatusCompleted
	}
	if !g.TargetDate.IsZero() && g.TargetDate.Before(DateOf(now).Time) {
		return StatusOverdue
	}
	return StatusInProgress
}

// DaysRemaining returns the number of whole days until the target date,
// negative once the date has passed.
func (g Goal) DaysRemaining(now time.Time) int {
	diff := g.TargetDate.Sub(DateOf(now).Time)
	return int(diff.Hours() / 24)
}
