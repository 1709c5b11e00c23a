package domain

// StoreStatus represents the lifecycle state of the store.
type StoreStatus string

const (
	StoreStatusCreated   StoreStatus = "CREATED"
	StoreStatusOpen      StoreStatus = "OPEN"
	StoreStatusSuspended StoreStatus = "SUSPENDED"
	StoreStatusClosed    StoreStatus = "CLOSED" // terminal
)

// Store is the singleton ledger aggregate. It is constructed once at startup
// in status CREATED, mutated only through open/suspend/close commands, and
// never destroyed.
type Store struct {
	Address           Address     `json:"address"` // the ledger's own identity
	Owner             Address     `json:"owner"`
	Status            StoreStatus `json:"status"`
	HeldBalance       uint64      `json:"held_balance"`       // total value currently custodied
	RefundableBalance uint64      `json:"refundable_balance"` // portion of HeldBalance reserved for pending refunds
	SettledBalance    uint64      `json:"settled_balance"`    // incentive earned through settlements, swept at close
	EventsCounter     uint64      `json:"events_counter"`
	PurchasesCounter  uint64      `json:"purchases_counter"`
}

// NewStore creates the store in its initial CREATED state.
func NewStore(address, owner Address) *Store {
	return &Store{
		Address: address,
		Owner:   owner,
		Status:  StoreStatusCreated,
	}
}

// CanOpen reports whether openStore is a valid transition.
func (s *Store) CanOpen() bool {
	return s.Status == StoreStatusCreated || s.Status == StoreStatusSuspended
}

// CanSuspend reports whether suspendStore is a valid transition.
func (s *Store) CanSuspend() bool {
	return s.Status == StoreStatusOpen
}

// CanClose reports whether closeStore is a valid transition.
func (s *Store) CanClose() bool {
	return s.Status == StoreStatusOpen || s.Status == StoreStatusSuspended
}

// IsOpen reports whether state-changing entity commands are permitted.
func (s *Store) IsOpen() bool {
	return s.Status == StoreStatusOpen
}
