package domain

// EventStatus represents the lifecycle state of an event.
type EventStatus string

const (
	EventStatusCreated        EventStatus = "CREATED"
	EventStatusSalesStarted   EventStatus = "SALES_STARTED"
	EventStatusSalesSuspended EventStatus = "SALES_SUSPENDED"
	EventStatusSalesFinished  EventStatus = "SALES_FINISHED"
	EventStatusCompleted      EventStatus = "COMPLETED"
	EventStatusSettled        EventStatus = "SETTLED"   // terminal
	EventStatusCancelled      EventStatus = "CANCELLED" // terminal
)

// MaxIncentiveBps is the upper bound of the store's revenue share.
const MaxIncentiveBps = 10000

// Event is a sellable batch of tickets under one organizer. Identification
// fields are immutable after creation; accounting fields mutate as purchases
// progress.
type Event struct {
	ID                uint64      `json:"id"`
	ExternalIDHash    Hash        `json:"external_id_hash"`
	Organizer         Address     `json:"organizer"`
	Name              string      `json:"name"`
	StoreIncentiveBps uint64      `json:"store_incentive_bps"` // 0..10000
	TicketPrice       uint64      `json:"ticket_price"`        // smallest value unit
	TicketsOnSale     uint64      `json:"tickets_on_sale"`     // fixed at creation
	Status            EventStatus `json:"status"`

	// Accounting fields.
	TicketsSold       uint64 `json:"tickets_sold"`
	TicketsLeft       uint64 `json:"tickets_left"`
	TicketsCancelled  uint64 `json:"tickets_cancelled"`
	TicketsRefunded   uint64 `json:"tickets_refunded"`
	TicketsCheckedIn  uint64 `json:"tickets_checked_in"`
	EventBalance      uint64 `json:"event_balance"`      // value received, net of reserves
	RefundableBalance uint64 `json:"refundable_balance"` // value reserved for pending refunds
}

// CanStartSales reports whether startTicketSales is a valid transition.
func (e *Event) CanStartSales() bool {
	return e.Status == EventStatusCreated || e.Status == EventStatusSalesSuspended
}

// CanSuspendSales reports whether suspendTicketSales is a valid transition.
func (e *Event) CanSuspendSales() bool {
	return e.Status == EventStatusSalesStarted
}

// CanEndSales reports whether endTicketSales is a valid transition.
func (e *Event) CanEndSales() bool {
	return e.Status == EventStatusSalesStarted || e.Status == EventStatusSalesSuspended
}

// CanComplete reports whether completeEvent is a valid transition.
func (e *Event) CanComplete() bool {
	return e.Status == EventStatusSalesFinished
}

// CanSettle reports whether settleEvent is a valid transition.
func (e *Event) CanSettle() bool {
	return e.Status == EventStatusCompleted
}

// CanCancel reports whether cancelEvent is a valid transition. Cancellation
// is the terminal escape from any pre-Completed, non-terminal state.
func (e *Event) CanCancel() bool {
	switch e.Status {
	case EventStatusCreated, EventStatusSalesStarted, EventStatusSalesSuspended, EventStatusSalesFinished:
		return true
	}
	return false
}

// SalesOpen reports whether tickets can currently be purchased.
func (e *Event) SalesOpen() bool {
	return e.Status == EventStatusSalesStarted
}

// BooksOpen reports whether purchase cancellations may still move value out
// of the event balance. Once the event is completed or settled the balance
// has been (or is about to be) paid out.
func (e *Event) BooksOpen() bool {
	return e.Status != EventStatusCompleted && e.Status != EventStatusSettled
}
