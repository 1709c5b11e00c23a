package ports

import (
	"context"
	"time"

	"ticket-store-ledger/internal/core/domain"
)

// TicketLedger is the command/query surface of the ledger core. Every command
// is attributed to an authenticated caller and either fully commits or fully
// fails; a failed command leaves all state exactly as before the call.
type TicketLedger interface {
	// Store commands (owner-only).
	OpenStore(ctx context.Context, caller domain.Address) error
	SuspendStore(ctx context.Context, caller domain.Address) error
	CloseStore(ctx context.Context, caller domain.Address) error

	// Event commands.
	CreateEvent(ctx context.Context, caller domain.Address, params CreateEventParams) (uint64, error)
	StartTicketSales(ctx context.Context, caller domain.Address, eventID uint64) error
	SuspendTicketSales(ctx context.Context, caller domain.Address, eventID uint64) error
	EndTicketSales(ctx context.Context, caller domain.Address, eventID uint64) error
	CompleteEvent(ctx context.Context, caller domain.Address, eventID uint64) error
	SettleEvent(ctx context.Context, caller domain.Address, eventID uint64) error
	CancelEvent(ctx context.Context, caller domain.Address, eventID uint64) error

	// Purchase commands.
	PurchaseTickets(ctx context.Context, caller domain.Address, params PurchaseTicketsParams) (uint64, error)
	CancelPurchase(ctx context.Context, caller domain.Address, params CancelPurchaseParams) error
	RefundPurchase(ctx context.Context, caller domain.Address, eventID, purchaseID uint64) error
	CheckIn(ctx context.Context, caller domain.Address, purchaseID uint64) error

	// Queries return immutable snapshots.
	StoreInfo(ctx context.Context) (*StoreInfo, error)
	EventInfo(ctx context.Context, id uint64) (*EventInfo, error)
	EventSalesInfo(ctx context.Context, id uint64) (*EventSalesInfo, error)
	PurchaseInfo(ctx context.Context, id uint64) (*PurchaseInfo, error)
	Notifications(ctx context.Context, after uint64, limit int) ([]domain.Notification, error)
}

// CreateEventParams holds validated input for event creation.
type CreateEventParams struct {
	ExternalID        string
	Organizer         domain.Address
	Name              string
	StoreIncentiveBps uint64
	TicketPrice       uint64
	TicketsOnSale     uint64
}

// PurchaseTicketsParams holds input for a ticket purchase. AttachedValue is
// the value the caller deposited with the command.
type PurchaseTicketsParams struct {
	EventID       uint64
	Quantity      uint64
	ExternalID    string
	Timestamp     uint64
	CustomerID    string
	AttachedValue uint64
}

// CancelPurchaseParams holds input for a purchase cancellation. ExternalID
// and CustomerID must hash-match the stored purchase record.
type CancelPurchaseParams struct {
	PurchaseID uint64
	ExternalID string
	CustomerID string
}

// StoreInfo is a snapshot of the store aggregate.
type StoreInfo struct {
	Owner             domain.Address     `json:"owner"`
	Status            domain.StoreStatus `json:"status"`
	HeldBalance       uint64             `json:"held_balance"`
	RefundableBalance uint64             `json:"refundable_balance"`
	SettledBalance    uint64             `json:"settled_balance"`
	EventsCounter     uint64             `json:"events_counter"`
	PurchasesCounter  uint64             `json:"purchases_counter"`
}

// EventInfo is a snapshot of an event's identification fields.
type EventInfo struct {
	ID                uint64             `json:"id"`
	ExternalIDHash    domain.Hash        `json:"external_id_hash"`
	Organizer         domain.Address     `json:"organizer"`
	Name              string             `json:"name"`
	StoreIncentiveBps uint64             `json:"store_incentive_bps"`
	TicketPrice       uint64             `json:"ticket_price"`
	TicketsOnSale     uint64             `json:"tickets_on_sale"`
	Status            domain.EventStatus `json:"status"`
}

// EventSalesInfo is a snapshot of an event's accounting fields.
type EventSalesInfo struct {
	ID                uint64 `json:"id"`
	TicketsSold       uint64 `json:"tickets_sold"`
	TicketsLeft       uint64 `json:"tickets_left"`
	TicketsCancelled  uint64 `json:"tickets_cancelled"`
	TicketsRefunded   uint64 `json:"tickets_refunded"`
	TicketsCheckedIn  uint64 `json:"tickets_checked_in"`
	EventBalance      uint64 `json:"event_balance"`
	RefundableBalance uint64 `json:"refundable_balance"`
}

// PurchaseInfo is a snapshot of a purchase record.
type PurchaseInfo struct {
	ID             uint64                `json:"id"`
	EventID        uint64                `json:"event_id"`
	Status         domain.PurchaseStatus `json:"status"`
	ExternalIDHash domain.Hash           `json:"external_id_hash"`
	Timestamp      uint64                `json:"timestamp"`
	Customer       domain.Address        `json:"customer"`
	CustomerIDHash domain.Hash           `json:"customer_id_hash"`
	Quantity       uint64                `json:"quantity"`
	Total          uint64                `json:"total"`
}

// TokenService handles caller identity tokens.
type TokenService interface {
	Generate(caller domain.Address) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed token claims.
type TokenClaims struct {
	Caller domain.Address
}
