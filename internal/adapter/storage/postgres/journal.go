package postgres

import (
	"context"
	"fmt"

	"ticket-store-ledger/internal/core/domain"
)

// Journal implements ports.NotificationJournal on PostgreSQL. The journal is
// append-only; the ledger assigns sequences, so the table has no serial
// column.
type Journal struct {
	pool Pool
}

// NewJournal creates a PostgreSQL-backed notification journal.
func NewJournal(pool Pool) *Journal {
	return &Journal{pool: pool}
}

// Init creates the journal table when it does not exist yet.
func (j *Journal) Init(ctx context.Context) error {
	_, err := j.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS notifications (
			sequence    BIGINT PRIMARY KEY,
			kind        TEXT NOT NULL,
			event_id    BIGINT NOT NULL,
			purchase_id BIGINT NOT NULL,
			amount      BIGINT NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("creating notifications table: %w", err)
	}
	return nil
}

// Append records a notification.
func (j *Journal) Append(ctx context.Context, n domain.Notification) error {
	_, err := j.pool.Exec(ctx,
		`INSERT INTO notifications (sequence, kind, event_id, purchase_id, amount, recorded_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		n.Sequence, string(n.Kind), n.EventID, n.PurchaseID, n.Amount, n.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// LastSequence returns the highest persisted sequence, 0 when the journal is
// empty. The ledger resumes numbering from here after a restart, so appends
// from a new incarnation never collide with surviving rows.
func (j *Journal) LastSequence(ctx context.Context) (uint64, error) {
	var seq uint64
	err := j.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(sequence), 0) FROM notifications`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("last notification sequence: %w", err)
	}
	return seq, nil
}

// List returns up to limit notifications with sequence > after, in order.
// limit <= 0 means no limit.
func (j *Journal) List(ctx context.Context, after uint64, limit int) ([]domain.Notification, error) {
	query := `SELECT sequence, kind, event_id, purchase_id, amount, recorded_at
		FROM notifications WHERE sequence > $1 ORDER BY sequence`
	args := []any{after}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := j.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var kind string
		if err := rows.Scan(&n.Sequence, &kind, &n.EventID, &n.PurchaseID, &n.Amount, &n.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.Kind = domain.NotificationKind(kind)
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return out, nil
}
