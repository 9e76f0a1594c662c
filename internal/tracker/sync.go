package tracker

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/Veraticus/the-budget-must-balance/internal/common"
	"github.com/Veraticus/the-budget-must-balance/internal/store"
)

// Fixed storage keys, one JSON document per state slice. The budgetTracker_
// prefix is kept from the original browser build so exported databases stay
// readable side by side.
const (
	keyUser         = "budgetTracker_user"
	keyTransactions = "budgetTracker_transactions"
	keyBudgets      = "budgetTracker_budgets"
	keyGoals        = "budgetTracker_goals"
	keyCategories   = "budgetTracker_categories"
	keyCards        = "budgetTracker_cards"
)

// slices enumerates the persisted slices and how to extract each from state.
// UI state is transient and deliberately absent.
var slices = []struct {
	extract func(store.State) any
	key     string
}{
	{key: keyUser, extract: func(s store.State) any { return s.User }},
	{key: keyTransactions, extract: func(s store.State) any { return s.Transactions }},
	{key: keyBudgets, extract: func(s store.State) any { return s.Budgets }},
	{key: keyGoals, extract: func(s store.State) any { return s.Goals }},
	{key: keyCategories, extract: func(s store.State) any { return s.Categories }},
	{key: keyCards, extract: func(s store.State) any { return s.Cards }},
}

// syncState writes every slice whose serialized form differs from what was
// last written. Failures are logged and swallowed: persistence is best
// effort and must never surface into state transitions.
func (t *Tracker) syncState(state store.State) {
	t.syncMu.Lock()
	defer t.syncMu.Unlock()

	ctx := context.Background()
	for _, slice := range slices {
		data, err := json.Marshal(slice.extract(state))
		if err != nil {
			common.LogError(err, "Failed to serialize state slice", common.Fields{"key": slice.key})
			continue
		}
		if bytes.Equal(data, t.lastWritten[slice.key]) {
			continue
		}
		if err := t.storage.Save(ctx, slice.key, data); err != nil {
			common.LogError(err, "Failed to persist state slice", common.Fields{"key": slice.key})
			continue
		}
		t.lastWritten[slice.key] = data
		common.LogDebug("Persisted state slice", common.Fields{
			"key":   slice.key,
			"bytes": len(data),
		})
	}
}

// Reset wipes every persisted slice and returns the in-memory state to
// defaults. Cards and UI state follow ClearAllData semantics.
func (t *Tracker) Reset(ctx context.Context) error {
	t.syncMu.Lock()
	for _, slice := range slices {
		if err := t.storage.Remove(ctx, slice.key); err != nil {
			t.syncMu.Unlock()
			return err
		}
		delete(t.lastWritten, slice.key)
	}
	t.syncMu.Unlock()

	t.ClearAllData()
	return nil
}
