// Package memory provides the ledger's authoritative storage: the core is a
// strictly serialized in-memory state machine, so maps guarded by a mutex are
// the production backend, not a test double. All methods hand out copies so
// callers can mutate freely and commit via Update.
package memory

import (
	"context"
	"fmt"
	"sync"

	"ticket-store-ledger/internal/core/domain"
)

// EventRepo implements ports.EventRepository.
type EventRepo struct {
	mu     sync.RWMutex
	events map[uint64]domain.Event
}

// NewEventRepo creates an empty event store.
func NewEventRepo() *EventRepo {
	return &EventRepo{events: make(map[uint64]domain.Event)}
}

// Insert stores a new event record. The ID must be unused.
func (r *EventRepo) Insert(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.events[event.ID]; exists {
		return fmt.Errorf("event %d already exists", event.ID)
	}
	r.events[event.ID] = *event
	return nil
}

// Get returns a copy of the record, or nil, nil when the ID is unknown.
func (r *EventRepo) Get(ctx context.Context, id uint64) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	event, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	return &event, nil
}

// Update commits a mutated copy back to the store.
func (r *EventRepo) Update(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.events[event.ID]; !exists {
		return fmt.Errorf("event %d not found", event.ID)
	}
	r.events[event.ID] = *event
	return nil
}
