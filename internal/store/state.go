// Package store holds the canonical application state, the closed set of
// actions that can change it, and the pure reducer that applies them.
package store

import "github.com/Veraticus/the-budget-must-balance/internal/model"

// UIState is transient interface state. It is never persisted.
type UIState struct {
	Notifications []model.Notification
	SidebarOpen   bool
	Loading       bool
}

// State is the canonical application state. Values are treated as immutable:
// the reducer returns a new State with only the affected slice replaced, so
// snapshots handed to consumers stay stable.
type State struct {
	User         model.User
	Categories   model.CategorySet
	UI           UIState
	Transactions []model.Transaction
	Budgets      []model.Budget
	Goals        []model.Goal
	Cards        []model.Card
}

// NewState returns the default state used before any persisted data loads.
func NewState() State {
	return State{
		User:         model.DefaultUser(),
		Categories:   model.DefaultCategories(),
		Cards:        model.DefaultCards(),
		Transactions: []model.Transaction{},
		Budgets:      []model.Budget{},
		Goals:        []model.Goal{},
	}
}
