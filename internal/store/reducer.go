package store

import "github.com/Veraticus/the-budget-must-balance/internal/model"

// Reduce applies an action to the state and returns the next state. It never
// mutates its input: the affected slice is rebuilt, untouched slices are
// carried over as-is. Unknown or nil actions return the state unchanged, and
// an update or delete targeting a missing ID is a silent no-op.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddTransaction:
		state.Transactions = prepend(state.Transactions, a.Transaction)
	case UpdateTransaction:
		state.Transactions = replaceMatch(state.Transactions, a.Transaction, func(t model.Transaction) bool {
			return t.ID == a.Transaction.ID
		})
	case DeleteTransaction:
		state.Transactions = removeMatch(state.Transactions, func(t model.Transaction) bool {
			return t.ID == a.ID
		})
	case SetTransactions:
		state.Transactions = a.Transactions
	case AddBudget:
		state.Budgets = appendCopy(state.Budgets, a.Budget)
	case UpdateBudget:
		state.Budgets = replaceMatch(state.Budgets, a.Budget, func(b model.Budget) bool {
			return b.ID == a.Budget.ID
		})
	case DeleteBudget:
		state.Budgets = removeMatch(state.Budgets, func(b model.Budget) bool {
			return b.ID == a.ID
		})
	case SetBudgets:
		state.Budgets = a.Budgets
	case AddGoal:
		state.Goals = appendCopy(state.Goals, a.Goal)
	case UpdateGoal:
		state.Goals = replaceMatch(state.Goals, a.Goal, func(g model.Goal) bool {
			return g.ID == a.Goal.ID
		})
	case DeleteGoal:
		state.Goals = removeMatch(state.Goals, func(g model.Goal) bool {
			return g.ID == a.ID
		})
	case SetGoals:
		state.Goals = a.Goals
	case SetCategories:
		state.Categories = a.Categories
	case UpdateUser:
		state.User = state.User.Merge(a.Patch)
	case SetCards:
		state.Cards = a.Cards
	case UpdateCard:
		state.Cards = replaceAt(state.Cards, a.Index, a.Card)
	case ToggleSidebar:
		state.UI.SidebarOpen = !state.UI.SidebarOpen
	case SetSidebar:
		state.UI.SidebarOpen = a.Open
	case SetLoading:
		state.UI.Loading = a.Loading
	case AddNotification:
		state.UI.Notifications = appendCopy(state.UI.Notifications, a.Notification)
	case RemoveNotification:
		state.UI.Notifications = removeMatch(state.UI.Notifications, func(n model.Notification) bool {
			return n.ID == a.ID
		})
	}
	return state
}

// prepend returns a new slice with e first, newest-first ordering.
func prepend[E any](s []E, e E) []E {
	out := make([]E, 0, len(s)+1)
	out = append(out, e)
	return append(out, s...)
}

// appendCopy returns a new slice with e last, leaving s untouched.
func appendCopy[E any](s []E, e E) []E {
	out := make([]E, 0, len(s)+1)
	out = append(out, s...)
	return append(out, e)
}

// replaceMatch returns a new slice with every matching element replaced by
// e. No match leaves the contents unchanged.
func replaceMatch[E any](s []E, e E, match func(E) bool) []E {
	out := make([]E, len(s))
	for i, existing := range s {
		if match(existing) {
			out[i] = e
		} else {
			out[i] = existing
		}
	}
	return out
}

// removeMatch returns a new slice with matching elements dropped.
func removeMatch[E any](s []E, match func(E) bool) []E {
	out := make([]E, 0, len(s))
	for _, existing := range s {
		if !match(existing) {
			out = append(out, existing)
		}
	}
	return out
}

// replaceAt returns a new slice with the element at i replaced. An index out
// of range leaves the contents unchanged.
func replaceAt[E any](s []E, i int, e E) []E {
	out := make([]E, len(s))
	copy(out, s)
	if i >= 0 && i < len(out) {
		out[i] = e
	}
	return out
}
