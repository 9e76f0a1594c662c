package tracker

import (
	"fmt"
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/common"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/Veraticus/the-budget-must-balance/internal/store"
)

// Payload is the import/export document shape. Every top-level key is
// optional on import; absent keys leave the corresponding slice untouched.
type Payload struct {
	ExportDate   time.Time           `json:"exportDate,omitempty"`
	User         *model.User         `json:"user,omitempty"`
	Categories   *model.CategorySet  `json:"categories,omitempty"`
	Transactions []model.Transaction `json:"transactions,omitempty"`
	Budgets      []model.Budget      `json:"budgets,omitempty"`
	Goals        []model.Goal        `json:"goals,omitempty"`
}

// Validate checks every present collection against the domain invariants
// before any of it is merged, so a malformed payload cannot half-apply.
func (p Payload) Validate() error {
	for i, txn := range p.Transactions {
		if txn.Title == "" {
			return fmt.Errorf("%w: %w at index %d: missing title", common.ErrInvalidPayload, common.ErrInvalidTransaction, i)
		}
		if !txn.Type.IsValid() {
			return fmt.Errorf("%w: %w at index %d: unknown type %q", common.ErrInvalidPayload, common.ErrInvalidTransaction, i, txn.Type)
		}
		if txn.Amount.Sign() <= 0 {
			return fmt.Errorf("%w: %w at index %d: amount must be positive", common.ErrInvalidPayload, common.ErrInvalidTransaction, i)
		}
	}

	for i, budget := range p.Budgets {
		if budget.Category == "" {
			return fmt.Errorf("%w: %w at index %d: missing category", common.ErrInvalidPayload, common.ErrInvalidBudget, i)
		}
		if !budget.Period.IsValid() {
			return fmt.Errorf("%w: %w at index %d: unknown period %q", common.ErrInvalidPayload, common.ErrInvalidBudget, i, budget.Period)
		}
		if budget.Amount.Sign() <= 0 {
			return fmt.Errorf("%w: %w at index %d: amount must be positive", common.ErrInvalidPayload, common.ErrInvalidBudget, i)
		}
	}

	for i, goal := range p.Goals {
		if goal.Title == "" {
			return fmt.Errorf("%w: %w at index %d: missing title", common.ErrInvalidPayload, common.ErrInvalidGoal, i)
		}
		if goal.TargetAmount.Sign() <= 0 {
			return fmt.Errorf("%w: %w at index %d: target amount must be positive", common.ErrInvalidPayload, common.ErrInvalidGoal, i)
		}
		if goal.CurrentAmount.Sign() < 0 {
			return fmt.Errorf("%w: %w at index %d: current amount cannot be negative", common.ErrInvalidPayload, common.ErrInvalidGoal, i)
		}
	}

	return nil
}

// ImportData validates the payload and merges each present slice into state.
// Partial imports are allowed; absent keys are left untouched.
func (t *Tracker) ImportData(payload Payload) error {
	if err := payload.Validate(); err != nil {
		return err
	}

	if payload.Transactions != nil {
		t.store.Dispatch(store.SetTransactions{Transactions: payload.Transactions})
	}
	if payload.Budgets != nil {
		t.store.Dispatch(store.SetBudgets{Budgets: payload.Budgets})
	}
	if payload.Goals != nil {
		t.store.Dispatch(store.SetGoals{Goals: payload.Goals})
	}
	if payload.Categories != nil {
		t.store.Dispatch(store.SetCategories{Categories: *payload.Categories})
	}
	if payload.User != nil {
		t.store.Dispatch(store.UpdateUser{Patch: *payload.User})
	}
	return nil
}

// ExportData snapshots the persisted slices into the import payload shape.
func (t *Tracker) ExportData() Payload {
	state := t.store.State()
	categories := state.Categories.Clone()
	user := state.User
	return Payload{
		ExportDate:   t.now(),
		User:         &user,
		Transactions: state.Transactions,
		Budgets:      state.Budgets,
		Goals:        state.Goals,
		Categories:   &categories,
	}
}
