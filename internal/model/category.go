package model

import "slices"

// CategorySet holds the ordered category name lists for each transaction
// type. The set is replaced wholesale (import, settings); individual entries
// are not CRUD'd.
type CategorySet struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// DefaultCategories returns the seeded category lists for a fresh profile.
func DefaultCategories() CategorySet {
	return CategorySet{
		Income:  []string{"Salary", "Freelance", "Investment", "Side Hustle", "Gift", "Other Income"},
		Expense: []string{"Food & Dining", "Transportation", "Shopping", "Utilities", "Entertainment", "Healthcare", "Education", "Other Expense"},
	}
}

// Contains reports whether name belongs to the list for the given type.
// The reducer does not enforce membership; callers use this for soft checks.
func (c CategorySet) Contains(t TransactionType, name string) bool {
	return slices.Contains(c.For(t), name)
}

// For returns the category list for a transaction type.
func (c CategorySet) For(t TransactionType) []string {
	if t == TypeIncome {
		return c.Income
	}
	return c.Expense
}

// IsEmpty reports whether both lists are empty.
func (c CategorySet) IsEmpty() bool {
	return len(c.Income) == 0 && len(c.Expense) == 0
}

// Clone returns a deep copy of the set.
func (c CategorySet) Clone() CategorySet {
	return CategorySet{
		Income:  slices.Clone(c.Income),
		Expense: slices.Clone(c.Expense),
	}
}
