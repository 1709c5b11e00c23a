package domain

import "time"

// NotificationKind identifies the state transition a notification records.
type NotificationKind string

const (
	NotifStoreOpen           NotificationKind = "STORE_OPEN"
	NotifStoreSuspended      NotificationKind = "STORE_SUSPENDED"
	NotifStoreClosed         NotificationKind = "STORE_CLOSED"
	NotifEventCreated        NotificationKind = "EVENT_CREATED"
	NotifEventSalesStarted   NotificationKind = "EVENT_SALES_STARTED"
	NotifEventSalesSuspended NotificationKind = "EVENT_SALES_SUSPENDED"
	NotifEventSalesFinished  NotificationKind = "EVENT_SALES_FINISHED"
	NotifEventCompleted      NotificationKind = "EVENT_COMPLETED"
	NotifEventSettled        NotificationKind = "EVENT_SETTLED"
	NotifEventCancelled      NotificationKind = "EVENT_CANCELLED"
	NotifPurchaseCompleted   NotificationKind = "PURCHASE_COMPLETED"
	NotifPurchaseCancelled   NotificationKind = "PURCHASE_CANCELLED"
	NotifPurchaseRefunded    NotificationKind = "PURCHASE_REFUNDED"
	NotifCustomerCheckedIn   NotificationKind = "CUSTOMER_CHECKED_IN"
)

// Notification is a typed transition record appended atomically with each
// successful command: exactly one per command, none on failure. The
// collaborator layer consumes the feed by sequence number.
type Notification struct {
	Sequence   uint64           `json:"sequence"`
	Kind       NotificationKind `json:"kind"`
	EventID    uint64           `json:"event_id,omitempty"`
	PurchaseID uint64           `json:"purchase_id,omitempty"`
	Amount     uint64           `json:"amount,omitempty"` // value moved, where applicable
	RecordedAt time.Time        `json:"recorded_at"`
}
