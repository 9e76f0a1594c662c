// Package tracker wires the observable store to durable storage and exposes
// the write facade consumed by the CLI and any other front end. It stamps ids
// and timestamps on new records, persists changed state slices, and owns
// notification auto-expiry.
package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/metrics"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/Veraticus/the-budget-must-balance/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultNotificationDuration is how long a notification lives unless the
// caller chooses otherwise.
const DefaultNotificationDuration = 5 * time.Second

// Storage is the durable slice layer the tracker persists into.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	IsEmpty(ctx context.Context, key string) (bool, error)
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithIDGenerator overrides id stamping, for tests.
func WithIDGenerator(newID func() string) Option {
	return func(t *Tracker) { t.newID = newID }
}

// Tracker is the application core: canonical state plus its persistence.
// Create one with New, then call Boot before use.
type Tracker struct {
	storage     Storage
	store       *store.Store
	now         func() time.Time
	newID       func() string
	timers      map[string]*time.Timer
	lastWritten map[string][]byte
	unsubscribe func()
	timerMu     sync.Mutex
	syncMu      sync.Mutex
}

// New creates a tracker backed by the given storage. The store starts at the
// default state until Boot loads persisted slices.
func New(storage Storage, opts ...Option) *Tracker {
	t := &Tracker{
		storage:     storage,
		store:       store.New(store.NewState()),
		now:         time.Now,
		newID:       uuid.NewString,
		timers:      make(map[string]*time.Timer),
		lastWritten: make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Close stops pending notification timers and detaches the persistence
// listener. The underlying storage is closed by its owner.
func (t *Tracker) Close() {
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}

	t.timerMu.Lock()
	defer t.timerMu.Unlock()
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
}

// Snapshot returns the current canonical state.
func (t *Tracker) Snapshot() store.State {
	return t.store.State()
}

// Summary derives the full metrics bundle from the current state.
func (t *Tracker) Summary() metrics.Summary {
	return metrics.Compute(t.store.State(), t.now())
}

// Subscribe registers a listener called after every state change. The
// returned function unsubscribes it.
func (t *Tracker) Subscribe(l store.Listener) func() {
	return t.store.Subscribe(l)
}

// AddTransaction stamps an id and creation time on the transaction, adds it
// newest-first, and returns the stamped record.
func (t *Tracker) AddTransaction(txn model.Transaction) model.Transaction {
	txn.ID = t.newID()
	txn.CreatedAt = t.now()
	t.store.Dispatch(store.AddTransaction{Transaction: txn})
	return txn
}

// UpdateTransaction wholesale-replaces the transaction with a matching id.
func (t *Tracker) UpdateTransaction(txn model.Transaction) {
	t.store.Dispatch(store.UpdateTransaction{Transaction: txn})
}

// DeleteTransaction removes a transaction by id.
func (t *Tracker) DeleteTransaction(id string) {
	t.store.Dispatch(store.DeleteTransaction{ID: id})
}

// SetTransactions replaces the transaction list wholesale.
func (t *Tracker) SetTransactions(txns []model.Transaction) {
	t.store.Dispatch(store.SetTransactions{Transactions: txns})
}

// AddBudget stamps an id and creation time on the budget and appends it.
func (t *Tracker) AddBudget(budget model.Budget) model.Budget {
	budget.ID = t.newID()
	budget.CreatedAt = t.now()
	t.store.Dispatch(store.AddBudget{Budget: budget})
	return budget
}

// UpdateBudget wholesale-replaces the budget with a matching id.
func (t *Tracker) UpdateBudget(budget model.Budget) {
	t.store.Dispatch(store.UpdateBudget{Budget: budget})
}

// DeleteBudget removes a budget by id.
func (t *Tracker) DeleteBudget(id string) {
	t.store.Dispatch(store.DeleteBudget{ID: id})
}

// SetBudgets replaces the budget list wholesale.
func (t *Tracker) SetBudgets(budgets []model.Budget) {
	t.store.Dispatch(store.SetBudgets{Budgets: budgets})
}

// AddGoal stamps an id and creation time on the goal and appends it.
func (t *Tracker) AddGoal(goal model.Goal) model.Goal {
	goal.ID = t.newID()
	goal.CreatedAt = t.now()
	t.store.Dispatch(store.AddGoal{Goal: goal})
	return goal
}

// UpdateGoal wholesale-replaces the goal with a matching id.
func (t *Tracker) UpdateGoal(goal model.Goal) {
	t.store.Dispatch(store.UpdateGoal{Goal: goal})
}

// DeleteGoal removes a goal by id.
func (t *Tracker) DeleteGoal(id string) {
	t.store.Dispatch(store.DeleteGoal{ID: id})
}

// SetGoals replaces the goal list wholesale.
func (t *Tracker) SetGoals(goals []model.Goal) {
	t.store.Dispatch(store.SetGoals{Goals: goals})
}

// ContributeToGoal adds amount to a goal's saved total. Returns false when
// no goal has the given id.
func (t *Tracker) ContributeToGoal(id string, amount decimal.Decimal) bool {
	for _, g := range t.store.State().Goals {
		if g.ID == id {
			g.CurrentAmount = g.CurrentAmount.Add(amount)
			t.store.Dispatch(store.UpdateGoal{Goal: g})
			return true
		}
	}
	return false
}

// CompleteGoal marks a goal finished by raising its saved amount to the
// target. Returns false when no goal has the given id.
func (t *Tracker) CompleteGoal(id string) bool {
	for _, g := range t.store.State().Goals {
		if g.ID == id {
			g.CurrentAmount = g.TargetAmount
			t.store.Dispatch(store.UpdateGoal{Goal: g})
			return true
		}
	}
	return false
}

// SetCategories replaces the category set wholesale.
func (t *Tracker) SetCategories(categories model.CategorySet) {
	t.store.Dispatch(store.SetCategories{Categories: categories})
}

// UpdateUser shallow-merges the patch into the user profile.
func (t *Tracker) UpdateUser(patch model.User) {
	t.store.Dispatch(store.UpdateUser{Patch: patch})
}

// SetCards replaces the card list wholesale.
func (t *Tracker) SetCards(cards []model.Card) {
	t.store.Dispatch(store.SetCards{Cards: cards})
}

// UpdateCard replaces the card at the given index.
func (t *Tracker) UpdateCard(index int, card model.Card) {
	t.store.Dispatch(store.UpdateCard{Index: index, Card: card})
}

// ToggleSidebar flips the sidebar flag.
func (t *Tracker) ToggleSidebar() {
	t.store.Dispatch(store.ToggleSidebar{})
}

// SetSidebar sets the sidebar flag.
func (t *Tracker) SetSidebar(open bool) {
	t.store.Dispatch(store.SetSidebar{Open: open})
}

// SetLoading sets the loading flag.
func (t *Tracker) SetLoading(loading bool) {
	t.store.Dispatch(store.SetLoading{Loading: loading})
}

// AddNotification appends a notification and schedules its removal after
// duration. An empty type defaults to info, a non-positive duration to
// DefaultNotificationDuration. The expiry timer is cancelled if the
// notification is removed manually first.
func (t *Tracker) AddNotification(message string, typ model.NotificationType, duration time.Duration) model.Notification {
	if typ == "" {
		typ = model.NotifyInfo
	}
	if duration <= 0 {
		duration = DefaultNotificationDuration
	}

	n := model.Notification{
		ID:        t.newID(),
		Message:   message,
		Type:      typ,
		Timestamp: t.now(),
	}
	t.store.Dispatch(store.AddNotification{Notification: n})

	t.timerMu.Lock()
	t.timers[n.ID] = time.AfterFunc(duration, func() {
		t.timerMu.Lock()
		delete(t.timers, n.ID)
		t.timerMu.Unlock()
		t.store.Dispatch(store.RemoveNotification{ID: n.ID})
	})
	t.timerMu.Unlock()

	return n
}

// RemoveNotification removes a notification immediately and cancels its
// pending expiry timer.
func (t *Tracker) RemoveNotification(id string) {
	t.timerMu.Lock()
	if timer, ok := t.timers[id]; ok {
		timer.Stop()
		delete(t.timers, id)
	}
	t.timerMu.Unlock()

	t.store.Dispatch(store.RemoveNotification{ID: id})
}

// ClearAllData empties transactions, budgets and goals and restores
// categories and the user profile to defaults. Cards and transient UI state
// are deliberately left alone.
func (t *Tracker) ClearAllData() {
	t.store.Dispatch(store.SetTransactions{Transactions: []model.Transaction{}})
	t.store.Dispatch(store.SetBudgets{Budgets: []model.Budget{}})
	t.store.Dispatch(store.SetGoals{Goals: []model.Goal{}})
	t.store.Dispatch(store.SetCategories{Categories: model.DefaultCategories()})
	t.store.Dispatch(store.UpdateUser{Patch: model.DefaultUser()})
}
