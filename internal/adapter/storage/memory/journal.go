package memory

import (
	"context"
	"sync"

	"ticket-store-ledger/internal/core/domain"
)

// Journal implements ports.NotificationJournal as an append-only slice.
type Journal struct {
	mu      sync.RWMutex
	entries []domain.Notification
}

// NewJournal creates an empty notification journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Append records a notification.
func (j *Journal) Append(ctx context.Context, n domain.Notification) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, n)
	return nil
}

// List returns up to limit notifications with sequence > after, in order.
// limit <= 0 means no limit.
func (j *Journal) List(ctx context.Context, after uint64, limit int) ([]domain.Notification, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var out []domain.Notification
	for _, n := range j.entries {
		if n.Sequence <= after {
			continue
		}
		out = append(out, n)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// LastSequence returns the sequence of the most recent entry, 0 when empty.
func (j *Journal) LastSequence(ctx context.Context) (uint64, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if len(j.entries) == 0 {
		return 0, nil
	}
	return j.entries[len(j.entries)-1].Sequence, nil
}
