package domain

// PurchaseStatus represents the lifecycle state of a purchase.
type PurchaseStatus string

const (
	PurchaseStatusCompleted PurchaseStatus = "COMPLETED"
	PurchaseStatusCancelled PurchaseStatus = "CANCELLED"
	PurchaseStatusRefunded  PurchaseStatus = "REFUNDED"   // terminal
	PurchaseStatusCheckedIn PurchaseStatus = "CHECKED_IN" // terminal
)

// Purchase is a customer's reservation of a quantity of tickets against one
// event. Purchases are append-only: never deleted, only status-mutated, which
// preserves an auditable history. EventID is a non-owning back-reference.
type Purchase struct {
	ID             uint64         `json:"id"`
	EventID        uint64         `json:"event_id"`
	ExternalIDHash Hash           `json:"external_id_hash"`
	Timestamp      uint64         `json:"timestamp"` // caller-supplied, non-zero
	Customer       Address        `json:"customer"`
	CustomerIDHash Hash           `json:"customer_id_hash"`
	Quantity       uint64         `json:"quantity"`
	Total          uint64         `json:"total"` // quantity x ticket price at purchase time
	Status         PurchaseStatus `json:"status"`
}

// CanCancel reports whether cancelPurchase is a valid transition.
func (p *Purchase) CanCancel() bool {
	return p.Status == PurchaseStatusCompleted
}

// CanRefund reports whether refundPurchase is a valid transition.
func (p *Purchase) CanRefund() bool {
	return p.Status == PurchaseStatusCancelled
}

// CanCheckIn reports whether checkIn is a valid transition.
func (p *Purchase) CanCheckIn() bool {
	return p.Status == PurchaseStatusCompleted
}

// IsTerminal returns true if the purchase is in a final state.
func (p *Purchase) IsTerminal() bool {
	return p.Status == PurchaseStatusRefunded || p.Status == PurchaseStatusCheckedIn
}
