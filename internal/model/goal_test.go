package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name    string
		current int64
		target  int64
		want    string
	}{
		{
			name:    "no savings yet",
			current: 0,
			target:  100,
			want:    "0",
		},
		{
			name:    "half way",
			current: 50,
			target:  100,
			want:    "50",
		},
		{
			name:    "overshoot clamps to 100",
			current: 150,
			target:  100,
			want:    "100",
		},
		{
			name:    "zero target guards divide by zero",
			current: 50,
			target:  0,
			want:    "0",
		},
		{
			name:    "exact completion",
			current: 2500,
			target:  2500,
			want:    "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Goal{
				CurrentAmount: decimal.NewFromInt(tt.current),
				TargetAmount:  decimal.NewFromInt(tt.target),
			}
			assert.Equal(t, tt.want, g.Progress().String())
		})
	}
}

func TestGoalStatus(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		goal Goal
		want GoalStatus
	}{
		{
			name: "reached target",
			goal: Goal{
				CurrentAmount: decimal.NewFromInt(2500),
				TargetAmount:  decimal.NewFromInt(2500),
				TargetDate:    NewDate(2024, time.March, 15),
			},
			want: StatusCompleted,
		},
		{
			name: "past deadline and short",
			goal: Goal{
				CurrentAmount: decimal.NewFromInt(100),
				TargetAmount:  decimal.NewFromInt(5000),
				TargetDate:    NewDate(2024, time.March, 15),
			},
			want: StatusOverdue,
		},
		{
			name: "deadline ahead",
			goal: Goal{
				CurrentAmount: decimal.NewFromInt(100),
				TargetAmount:  decimal.NewFromInt(5000),
				TargetDate:    NewDate(2024, time.December, 31),
			},
			want: StatusInProgress,
		},
		{
			name: "due today is not overdue",
			goal: Goal{
				CurrentAmount: decimal.NewFromInt(100),
				TargetAmount:  decimal.NewFromInt(5000),
				TargetDate:    NewDate(2024, time.June, 15),
			},
			want: StatusInProgress,
		},
		{
			name: "zero target never completes",
			goal: Goal{
				CurrentAmount: decimal.NewFromInt(100),
				TargetAmount:  decimal.Zero,
				TargetDate:    NewDate(2024, time.December, 31),
			},
			want: StatusInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.goal.Status(now))
		})
	}
}

func TestGoalDaysRemaining(t *testing.T) {
	now := time.Date(2024, time.June, 15, 23, 30, 0, 0, time.UTC)

	g := Goal{TargetDate: NewDate(2024, time.June, 25)}
	assert.Equal(t, 10, g.DaysRemaining(now))

	overdue := Goal{TargetDate: NewDate(2024, time.June, 10)}
	assert.Equal(t, -5, overdue.DaysRemaining(now))
}
