package dto

// CreateEventRequest is the request body for event creation.
type CreateEventRequest struct {
	ExternalID        string `json:"external_id" binding:"required,max=100,safe_id"`
	Organizer         string `json:"organizer" binding:"required,max=100"`
	Name              string `json:"name" binding:"required,min=1,max=200"`
	StoreIncentiveBps uint64 `json:"store_incentive_bps"`
	TicketPrice       uint64 `json:"ticket_price"`
	TicketsOnSale     uint64 `json:"tickets_on_sale" binding:"required,gt=0"`
}

// PurchaseRequest is the request body for a ticket purchase. The event ID
// comes from the URL path.
type PurchaseRequest struct {
	Quantity      uint64 `json:"quantity" binding:"required,gt=0"`
	ExternalID    string `json:"external_id" binding:"required,max=100,safe_id"`
	Timestamp     uint64 `json:"timestamp" binding:"required"`
	CustomerID    string `json:"customer_id" binding:"required,max=100,safe_id"`
	AttachedValue uint64 `json:"attached_value"`
}

// CancelPurchaseRequest is the request body for a purchase cancellation. The
// identifiers must hash-match the stored purchase record.
type CancelPurchaseRequest struct {
	ExternalID string `json:"external_id" binding:"required,max=100,safe_id"`
	CustomerID string `json:"customer_id" binding:"required,max=100,safe_id"`
}

// CreatedResponse carries the ID minted by a creating command.
type CreatedResponse struct {
	ID uint64 `json:"id"`
}
