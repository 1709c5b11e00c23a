package ports

import (
	"context"
	"time"

	"ticket-store-ledger/internal/core/domain"
)

// EventRepository defines storage for event records. Get returns nil, nil
// when the ID is unknown. Implementations return and accept copies: a record
// handed out is never aliased to stored state, so a command that fails after
// reading leaves nothing behind.
type EventRepository interface {
	Insert(ctx context.Context, event *domain.Event) error
	Get(ctx context.Context, id uint64) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
}

// PurchaseRepository defines storage for purchase records. Records are
// append-only: inserted once, then only status-mutated via Update.
type PurchaseRepository interface {
	Insert(ctx context.Context, purchase *domain.Purchase) error
	Get(ctx context.Context, id uint64) (*domain.Purchase, error)
	Update(ctx context.Context, purchase *domain.Purchase) error
}

// NotificationJournal is the append-only feed of transition records the
// collaborator layer subscribes to.
type NotificationJournal interface {
	// Append records a notification. Sequence numbers are assigned by the
	// ledger and strictly increase.
	Append(ctx context.Context, n domain.Notification) error
	// List returns up to limit notifications with sequence > after, in order.
	List(ctx context.Context, after uint64, limit int) ([]domain.Notification, error)
	// LastSequence returns the highest sequence persisted, 0 when the journal
	// is empty. The ledger resumes numbering from here after a restart.
	LastSequence(ctx context.Context) (uint64, error)
}

// Treasury is the collaborator-provided place value is withdrawn to. Deposits
// arrive attached to commands; the ledger only ever pays out through here
// (refunds, organizer settlements, the close-store sweep).
type Treasury interface {
	Withdraw(ctx context.Context, to domain.Address, amount uint64) error
}

// IdempotencyCache caches command responses at the transport layer so caller
// retries replay instead of re-executing.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil on miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
