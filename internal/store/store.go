package store

import "sync"

// Listener receives the new state after every dispatched action.
type Listener func(State)

// Store owns the canonical state and serializes all transitions through the
// reducer. It is constructor-injected wherever read/write access is needed;
// there is no package-level instance.
type Store struct {
	listeners map[int]Listener
	state     State
	nextID    int
	mu        sync.RWMutex
}

// New creates a store seeded with the given initial state.
func New(initial State) *Store {
	return &Store{
		state:     initial,
		listeners: make(map[int]Listener),
	}
}

// State returns a snapshot of the current state. Snapshots are safe to hold:
// the reducer never mutates slices in place.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies an action through the reducer and notifies listeners with
// the resulting state. It returns that state for convenience.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	next := s.state
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return next
}

// SetState replaces the state wholesale, bypassing the reducer, and notifies
// listeners. It exists for the initial load; every later transition goes
// through Dispatch.
func (s *Store) SetState(state State) {
	s.mu.Lock()
	s.state = state
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
}

// Subscribe registers a listener called after every dispatch. The returned
// function unsubscribes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
