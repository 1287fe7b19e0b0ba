// internal/view/store.go
package view

import (
	"context"
	"errors"
	"sync"

	"songcatalog/internal/lib/logger/utils"

	"go.uber.org/zap"
)

var ErrStoreStopped = errors.New("view store stopped")

type dispatch struct {
	action Action
	done   chan State
}

// Store owns a State and applies actions received over its channel one at
// a time. Run must be started before Dispatch is called.
type Store struct {
	mu      sync.RWMutex
	state   State
	actions chan dispatch
	stopped chan struct{}
}

func NewStore(initial State) *Store {
	return &Store{
		state:   initial,
		actions: make(chan dispatch),
		stopped: make(chan struct{}),
	}
}

// Run applies actions until ctx is done.
func (s *Store) Run(ctx context.Context) {
	defer close(s.stopped)
	for {
		select {
		case <-ctx.Done():
			return
		case d := <-s.actions:
			s.mu.Lock()
			s.state = Reduce(s.state, d.action)
			next := s.state
			s.mu.Unlock()

			utils.Logger.Debug("Store - action applied",
				zap.Stringer("action", d.action.Type),
				zap.Bool("loading", next.Loading),
				zap.Int("songs", len(next.Songs)))
			d.done <- next
		}
	}
}

// Dispatch sends a to the Run loop and returns the state after it was
// applied.
func (s *Store) Dispatch(ctx context.Context, a Action) (State, error) {
	d := dispatch{action: a, done: make(chan State, 1)}
	select {
	case s.actions <- d:
	case <-s.stopped:
		return State{}, ErrStoreStopped
	case <-ctx.Done():
		return State{}, ctx.Err()
	}
	return <-d.done, nil
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
