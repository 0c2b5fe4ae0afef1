package state

import (
	"log/slog"
	"sync"
)

// Listener observes a transition after the new snapshot is installed.
// Listeners run on the dispatching goroutine and must not call Dispatch.
type Listener func(prev, next AppState)

// Store owns the application state. Dispatch is the only way to change it.
type Store struct {
	// dispatchMu serializes dispatch and notification so listeners see
	// transitions in the order they were applied.
	dispatchMu sync.Mutex

	mu        sync.RWMutex
	state     AppState
	listeners []subscription
	nextID    int

	logger *slog.Logger
}

type subscription struct {
	id int
	fn Listener
}

// NewStore creates a store holding initial
func NewStore(initial AppState, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		state:  initial,
		logger: logger,
	}
}

// State returns the current snapshot
func (s *Store) State() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies action through Reduce, installs the result and notifies
// listeners. It returns the new snapshot.
func (s *Store) Dispatch(action Action) AppState {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	return s.apply(action)
}

// Decider inspects a snapshot and picks the action to apply to it.
// A nil action with a nil error leaves the state unchanged.
type Decider func(current AppState) (Action, error)

// Update runs decide against the current snapshot and dispatches its action
// with no other dispatch in between, so checks made by decide still hold when
// the action is reduced. When decide fails nothing is dispatched and its error
// is returned. decide must not call Dispatch or Update.
func (s *Store) Update(decide Decider) (AppState, error) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	current := s.State()
	action, err := decide(current)
	if err != nil {
		return current, err
	}
	if action == nil {
		return current, nil
	}
	return s.apply(action), nil
}

// apply must be called with dispatchMu held
func (s *Store) apply(action Action) AppState {
	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, action)
	s.state = next
	listeners := make([]subscription, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	if changes := Diff(prev, next); changes.Any() {
		s.logger.Debug("action dispatched", "action", action.Kind().String(), "changed", changes)
	} else {
		s.logger.Debug("action had no effect", "action", action.Kind().String())
	}

	for _, l := range listeners {
		l.fn(prev, next)
	}

	return next
}

// Subscribe registers fn and returns a function that removes it
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
