package store

import "github.com/Veraticus/the-budget-must-balance/internal/model"

// Action is the closed set of state transitions. Each variant carries a
// strongly typed payload; the marker method keeps the union sealed so the
// reducer's type switch stays exhaustive.
type Action interface {
	isAction()
}

// AddTransaction prepends a transaction, newest first.
type AddTransaction struct {
	Transaction model.Transaction
}

// UpdateTransaction wholesale-replaces the transaction with a matching ID.
// A missing ID is a silent no-op.
type UpdateTransaction struct {
	Transaction model.Transaction
}

// DeleteTransaction removes the transaction with the given ID.
type DeleteTransaction struct {
	ID string
}

// SetTransactions replaces the transaction list wholesale.
type SetTransactions struct {
	Transactions []model.Transaction
}

// AddBudget appends a budget.
type AddBudget struct {
	Budget model.Budget
}

// UpdateBudget wholesale-replaces the budget with a matching ID.
type UpdateBudget struct {
	Budget model.Budget
}

// DeleteBudget removes the budget with the given ID.
type DeleteBudget struct {
	ID string
}

// SetBudgets replaces the budget list wholesale.
type SetBudgets struct {
	Budgets []model.Budget
}

// AddGoal appends a goal.
type AddGoal struct {
	Goal model.Goal
}

// UpdateGoal wholesale-replaces the goal with a matching ID.
type UpdateGoal struct {
	Goal model.Goal
}

// DeleteGoal removes the goal with the given ID.
type DeleteGoal struct {
	ID string
}

// SetGoals replaces the goal list wholesale.
type SetGoals struct {
	Goals []model.Goal
}

// SetCategories replaces the category set wholesale.
type SetCategories struct {
	Categories model.CategorySet
}

// UpdateUser shallow-merges the patch into the user profile.
type UpdateUser struct {
	Patch model.User
}

// SetCards replaces the card list wholesale.
type SetCards struct {
	Cards []model.Card
}

// UpdateCard replaces the card at Index. Out-of-range is a silent no-op.
type UpdateCard struct {
	Card  model.Card
	Index int
}

// ToggleSidebar flips the sidebar flag.
type ToggleSidebar struct{}

// SetSidebar sets the sidebar flag.
type SetSidebar struct {
	Open bool
}

// SetLoading sets the loading flag.
type SetLoading struct {
	Loading bool
}

// AddNotification appends a notification.
type AddNotification struct {
	Notification model.Notification
}

// RemoveNotification removes the notification with the given ID.
type RemoveNotification struct {
	ID string
}

func (AddTransaction) isAction()     {}
func (UpdateTransaction) isAction()  {}
func (DeleteTransaction) isAction()  {}
func (SetTransactions) isAction()    {}
func (AddBudget) isAction()          {}
func (UpdateBudget) isAction()       {}
func (DeleteBudget) isAction()       {}
func (SetBudgets) isAction()         {}
func (AddGoal) isAction()            {}
func (UpdateGoal) isAction()         {}
func (DeleteGoal) isAction()         {}
func (SetGoals) isAction()           {}
func (SetCategories) isAction()      {}
func (UpdateUser) isAction()         {}
func (SetCards) isAction()           {}
func (UpdateCard) isAction()         {}
func (ToggleSidebar) isAction()      {}
func (SetSidebar) isAction()         {}
func (SetLoading) isAction()         {}
func (AddNotification) isAction()    {}
func (RemoveNotification) isAction() {}
