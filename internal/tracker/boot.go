package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"unicode/utf8"

	"github.com/Veraticus/the-budget-must-balance/internal/common"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/Veraticus/the-budget-must-balance/internal/storage"
	"github.com/Veraticus/the-budget-must-balance/internal/store"
)

// Boot loads every persisted slice (falling back to defaults on absence or
// corruption), migrates legacy currency symbols, seeds demo data on first
// run, and attaches the persistence listener. Call it once before using the
// facade.
func (t *Tracker) Boot(ctx context.Context) error {
	state := store.NewState()

	loadSlice(ctx, t.storage, keyUser, &state.User, model.DefaultUser())
	loadSlice(ctx, t.storage, keyTransactions, &state.Transactions, []model.Transaction{})
	loadSlice(ctx, t.storage, keyBudgets, &state.Budgets, []model.Budget{})
	loadSlice(ctx, t.storage, keyGoals, &state.Goals, []model.Goal{})
	loadSlice(ctx, t.storage, keyCategories, &state.Categories, model.DefaultCategories())
	loadSlice(ctx, t.storage, keyCards, &state.Cards, model.DefaultCards())

	// Older builds stored the currency symbol rather than its code. Symbols
	// are at most two characters; codes are three. Count runes, not bytes,
	// so multi-byte symbols like "€" are caught.
	if utf8.RuneCountInString(state.User.Currency) <= 2 {
		migrated := model.MigrateCurrencySymbol(state.User.Currency)
		common.LogInfo("Migrated legacy currency symbol", common.Fields{
			"symbol": state.User.Currency,
			"code":   migrated,
		})
		state.User.Currency = migrated
	}

	if state.Categories.IsEmpty() {
		state.Categories = model.DefaultCategories()
	}

	seeded, err := t.maybeSeed(ctx, &state)
	if err != nil {
		return err
	}
	if seeded {
		common.LogInfo("Seeded demo data for first run", common.Fields{
			"transactions": len(state.Transactions),
			"goals":        len(state.Goals),
		})
	}

	// Attaching the persistence listener before setting the loaded state
	// persists seeded and migrated slices immediately, and any listener
	// subscribed before Boot sees the loaded state too.
	t.unsubscribe = t.store.Subscribe(t.syncState)
	t.store.SetState(state)
	return nil
}

// maybeSeed fills transactions and goals with the demo dataset when both are
// empty in storage. Either slice being non-empty suppresses seeding for both.
func (t *Tracker) maybeSeed(ctx context.Context, state *store.State) (bool, error) {
	txnsEmpty, err := t.storage.IsEmpty(ctx, keyTransactions)
	if err != nil {
		return false, err
	}
	goalsEmpty, err := t.storage.IsEmpty(ctx, keyGoals)
	if err != nil {
		return false, err
	}
	if !txnsEmpty || !goalsEmpty {
		return false, nil
	}

	state.Transactions = DemoTransactions(t.now())
	state.Goals = DemoGoals(t.now())
	return true, nil
}

// loadSlice reads and decodes one slice, substituting the fallback when the
// key is absent or its contents cannot be parsed. Corruption is logged and
// tolerated, never returned to the caller.
func loadSlice[T any](ctx context.Context, st Storage, key string, into *T, fallback T) {
	data, err := st.Load(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		*into = fallback
		return
	}
	if err != nil {
		common.LogWarn("Failed to load state slice, using default", common.Fields{
			"key":   key,
			"error": err.Error(),
		})
		*into = fallback
		return
	}

	if err := json.Unmarshal(data, into); err != nil {
		common.LogWarn("Corrupted state slice, using default", common.Fields{
			"key":   key,
			"error": err.Error(),
		})
		*into = fallback
	}
}
