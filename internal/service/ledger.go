package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ticket-store-ledger/internal/core/domain"
	"ticket-store-ledger/internal/core/ports"
	"ticket-store-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// LedgerService implements ports.TicketLedger. It owns the singleton store
// aggregate and orchestrates the registries and the accounting engine.
//
// Commands are strictly serialized under one mutex: the total ordering the
// original transport guaranteed externally is realized in-process here. Each
// command validates every precondition before performing any mutation
// (check-then-act), so a rejected command observes and leaves no change.
type LedgerService struct {
	mu         sync.Mutex
	store      *domain.Store
	events     *EventRegistry
	purchases  *PurchaseRegistry
	accounting *AccountingEngine
	access     AccessControl
	journal    ports.NotificationJournal
	notifSeq   uint64
	log        zerolog.Logger
}

// NewLedgerService creates the ledger with its store in status CREATED. The
// notification sequence resumes from the journal's last persisted record, so
// a restart over a durable journal never re-issues a sequence number.
func NewLedgerService(
	ctx context.Context,
	ledgerAddress, owner domain.Address,
	eventRepo ports.EventRepository,
	purchaseRepo ports.PurchaseRepository,
	journal ports.NotificationJournal,
	treasury ports.Treasury,
	log zerolog.Logger,
) (*LedgerService, error) {
	seq, err := journal.LastSequence(ctx)
	if err != nil {
		return nil, fmt.Errorf("recovering notification sequence: %w", err)
	}
	return &LedgerService{
		store:      domain.NewStore(ledgerAddress, owner),
		events:     NewEventRegistry(eventRepo),
		purchases:  NewPurchaseRegistry(purchaseRepo),
		accounting: NewAccountingEngine(treasury),
		journal:    journal,
		notifSeq:   seq,
		log:        log,
	}, nil
}

// ---- Store commands ----

// OpenStore transitions the store Created|Suspended -> Open. Owner-only.
func (s *LedgerService) OpenStore(ctx context.Context, caller domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.access.RequireOwner(s.store, caller); err != nil {
		return err
	}
	if !s.store.CanOpen() {
		return apperror.ErrInvalidStoreTransition(string(s.store.Status))
	}
	s.store.Status = domain.StoreStatusOpen
	s.notify(ctx, domain.Notification{Kind: domain.NotifStoreOpen})

	s.log.Info().Str("status", string(s.store.Status)).Msg("store opened")
	return nil
}

// SuspendStore transitions the store Open -> Suspended. Owner-only.
func (s *LedgerService) SuspendStore(ctx context.Context, caller domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.access.RequireOwner(s.store, caller); err != nil {
		return err
	}
	if !s.store.CanSuspend() {
		return apperror.ErrInvalidStoreTransition(string(s.store.Status))
	}
	s.store.Status = domain.StoreStatusSuspended
	s.notify(ctx, domain.Notification{Kind: domain.NotifStoreSuspended})

	s.log.Info().Str("status", string(s.store.Status)).Msg("store suspended")
	return nil
}

// CloseStore transitions the store Open|Suspended -> Closed (terminal) and
// sweeps all balance not reserved for pending refunds to the owner.
func (s *LedgerService) CloseStore(ctx context.Context, caller domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.access.RequireOwner(s.store, caller); err != nil {
		return err
	}
	if !s.store.CanClose() {
		return apperror.ErrInvalidStoreTransition(string(s.store.Status))
	}
	sweep, err := s.accounting.SweepOnClose(ctx, s.store)
	if err != nil {
		return err
	}
	s.store.Status = domain.StoreStatusClosed
	s.notify(ctx, domain.Notification{Kind: domain.NotifStoreClosed, Amount: sweep})

	s.log.Info().Uint64("sweep", sweep).Msg("store closed")
	return nil
}

// ---- Event commands ----

// CreateEvent validates input, mints a new event ID, and stores the record
// in status Created. Owner-only; the store must be open.
func (s *LedgerService) CreateEvent(ctx context.Context, caller domain.Address, params ports.CreateEventParams) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.access.RequireOwner(s.store, caller); err != nil {
		return 0, err
	}
	if !s.store.IsOpen() {
		return 0, apperror.ErrStoreNotOpen()
	}

	event, err := s.events.Create(ctx, s.store, s.store.EventsCounter+1, params)
	if err != nil {
		return 0, err
	}
	s.store.EventsCounter++
	s.notify(ctx, domain.Notification{Kind: domain.NotifEventCreated, EventID: event.ID})

	s.log.Info().
		Uint64("event_id", event.ID).
		Str("organizer", string(event.Organizer)).
		Uint64("tickets_on_sale", event.TicketsOnSale).
		Msg("event created")
	return event.ID, nil
}

// StartTicketSales transitions Created|SalesSuspended -> SalesStarted.
// Organizer-only.
func (s *LedgerService) StartTicketSales(ctx context.Context, caller domain.Address, eventID uint64) error {
	return s.eventTransition(ctx, caller, eventID, domain.NotifEventSalesStarted, s.events.StartSales)
}

// SuspendTicketSales transitions SalesStarted -> SalesSuspended. Organizer-only.
func (s *LedgerService) SuspendTicketSales(ctx context.Context, caller domain.Address, eventID uint64) error {
	return s.eventTransition(ctx, caller, eventID, domain.NotifEventSalesSuspended, s.events.SuspendSales)
}

// EndTicketSales transitions SalesStarted|SalesSuspended -> SalesFinished.
// Organizer-only.
func (s *LedgerService) EndTicketSales(ctx context.Context, caller domain.Address, eventID uint64) error {
	return s.eventTransition(ctx, caller, eventID, domain.NotifEventSalesFinished, s.events.EndSales)
}

// CompleteEvent transitions SalesFinished -> Completed. Organizer-only.
func (s *LedgerService) CompleteEvent(ctx context.Context, caller domain.Address, eventID uint64) error {
	return s.eventTransition(ctx, caller, eventID, domain.NotifEventCompleted, s.events.Complete)
}

func (s *LedgerService) eventTransition(
	ctx context.Context,
	caller domain.Address,
	eventID uint64,
	kind domain.NotificationKind,
	transition func(context.Context, *domain.Event) error,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.IsOpen() {
		return apperror.ErrStoreNotOpen()
	}
	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.access.RequireOrganizer(event, caller); err != nil {
		return err
	}
	if err := transition(ctx, event); err != nil {
		return err
	}
	s.notify(ctx, domain.Notification{Kind: kind, EventID: eventID})

	s.log.Info().
		Uint64("event_id", eventID).
		Str("status", string(event.Status)).
		Msg("event transition")
	return nil
}

// SettleEvent splits the event's net revenue between organizer and store
// owner and transitions Completed -> Settled. Anyone may trigger settlement
// once the event is eligible.
func (s *LedgerService) SettleEvent(ctx context.Context, caller domain.Address, eventID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.IsOpen() {
		return apperror.ErrStoreNotOpen()
	}
	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.events.CheckSettle(event); err != nil {
		return err
	}
	payout, incentive, err := s.accounting.Settle(ctx, s.store, event)
	if err != nil {
		return err
	}
	event.Status = domain.EventStatusSettled
	if err := s.events.Save(ctx, event); err != nil {
		return err
	}
	s.notify(ctx, domain.Notification{Kind: domain.NotifEventSettled, EventID: eventID, Amount: payout})

	s.log.Info().
		Uint64("event_id", eventID).
		Uint64("organizer_payout", payout).
		Uint64("store_incentive", incentive).
		Msg("event settled")
	return nil
}

// CancelEvent is the terminal escape from any pre-Completed state: the
// event's remaining balance becomes refundable and the status turns
// Cancelled. Organizer-only.
func (s *LedgerService) CancelEvent(ctx context.Context, caller domain.Address, eventID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.IsOpen() {
		return apperror.ErrStoreNotOpen()
	}
	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.access.RequireOrganizer(event, caller); err != nil {
		return err
	}
	if err := s.events.CheckCancel(event); err != nil {
		return err
	}
	released := event.EventBalance
	s.accounting.CancelEvent(s.store, event)
	event.Status = domain.EventStatusCancelled
	if err := s.events.Save(ctx, event); err != nil {
		return err
	}
	s.notify(ctx, domain.Notification{Kind: domain.NotifEventCancelled, EventID: eventID, Amount: released})

	s.log.Info().
		Uint64("event_id", eventID).
		Uint64("released", released).
		Msg("event cancelled")
	return nil
}

// ---- Purchase commands ----

// PurchaseTickets records a sale. The attached value must equal exactly
// quantity x ticket price.
func (s *LedgerService) PurchaseTickets(ctx context.Context, caller domain.Address, params ports.PurchaseTicketsParams) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.IsOpen() {
		return 0, apperror.ErrStoreNotOpen()
	}
	event, err := s.events.Get(ctx, params.EventID)
	if err != nil {
		return 0, err
	}
	if err := s.purchases.Validate(event, params); err != nil {
		return 0, err
	}
	total, err := s.accounting.OrderTotal(params.Quantity, event.TicketPrice)
	if err != nil {
		return 0, err
	}
	if params.AttachedValue != total {
		return 0, apperror.ErrIncorrectPayment(total)
	}

	purchase, err := s.purchases.Create(ctx, s.store.PurchasesCounter+1, caller, total, params)
	if err != nil {
		return 0, err
	}
	s.store.PurchasesCounter++

	event.TicketsLeft -= params.Quantity
	event.TicketsSold += params.Quantity
	s.accounting.RecordSale(s.store, event, total)
	if err := s.events.Save(ctx, event); err != nil {
		return 0, err
	}
	s.notify(ctx, domain.Notification{
		Kind:       domain.NotifPurchaseCompleted,
		EventID:    event.ID,
		PurchaseID: purchase.ID,
		Amount:     total,
	})

	s.log.Info().
		Uint64("purchase_id", purchase.ID).
		Uint64("event_id", event.ID).
		Uint64("quantity", params.Quantity).
		Uint64("total", total).
		Msg("tickets purchased")
	return purchase.ID, nil
}

// CancelPurchase transitions a purchase Completed -> Cancelled and reserves
// its total for refund. The sale stays counted as sold-but-unfulfilled:
// tickets never return to the sale pool.
func (s *LedgerService) CancelPurchase(ctx context.Context, caller domain.Address, params ports.CancelPurchaseParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.IsOpen() {
		return apperror.ErrStoreNotOpen()
	}
	purchase, err := s.purchases.Get(ctx, params.PurchaseID)
	if err != nil {
		return err
	}
	if err := s.access.RequireCustomer(purchase, caller); err != nil {
		return err
	}
	if err := s.access.VerifyPurchaseIdentity(purchase, params.ExternalID, params.CustomerID); err != nil {
		return err
	}
	if !purchase.CanCancel() {
		return apperror.ErrInvalidPurchaseTransition(string(purchase.Status))
	}
	event, err := s.events.Get(ctx, purchase.EventID)
	if err != nil {
		return err
	}
	if !event.BooksOpen() {
		return apperror.ErrInvalidEventTransition(string(event.Status))
	}

	// On a cancelled event the whole balance is already in the refundable
	// reserve; only the individual reservation move is skipped.
	if event.Status != domain.EventStatusCancelled {
		if err := s.accounting.ReserveRefund(s.store, event, purchase.Total); err != nil {
			return err
		}
	}
	event.TicketsCancelled += purchase.Quantity
	if err := s.purchases.Cancel(ctx, purchase); err != nil {
		return err
	}
	if err := s.events.Save(ctx, event); err != nil {
		return err
	}
	s.notify(ctx, domain.Notification{
		Kind:       domain.NotifPurchaseCancelled,
		EventID:    event.ID,
		PurchaseID: purchase.ID,
		Amount:     purchase.Total,
	})

	s.log.Info().
		Uint64("purchase_id", purchase.ID).
		Uint64("event_id", event.ID).
		Uint64("reserved", purchase.Total).
		Msg("purchase cancelled")
	return nil
}

// RefundPurchase pays a reserved refund back to the customer and transitions
// the purchase Cancelled -> Refunded. Organizer-only. Refunds stay available
// after store closure: the reserve survived the sweep.
func (s *LedgerService) RefundPurchase(ctx context.Context, caller domain.Address, eventID, purchaseID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.access.RequireOrganizer(event, caller); err != nil {
		return err
	}
	purchase, err := s.purchases.Get(ctx, purchaseID)
	if err != nil {
		return err
	}
	if purchase.EventID != eventID {
		return apperror.Validation("purchase does not belong to this event")
	}
	if !purchase.CanRefund() {
		return apperror.ErrInvalidPurchaseTransition(string(purchase.Status))
	}
	if err := s.accounting.PayRefund(ctx, s.store, event, purchase); err != nil {
		return err
	}
	event.TicketsRefunded += purchase.Quantity
	if err := s.purchases.Refund(ctx, purchase); err != nil {
		return err
	}
	if err := s.events.Save(ctx, event); err != nil {
		return err
	}
	s.notify(ctx, domain.Notification{
		Kind:       domain.NotifPurchaseRefunded,
		EventID:    eventID,
		PurchaseID: purchaseID,
		Amount:     purchase.Total,
	})

	s.log.Info().
		Uint64("purchase_id", purchaseID).
		Uint64("event_id", eventID).
		Uint64("refunded", purchase.Total).
		Msg("purchase refunded")
	return nil
}

// CheckIn transitions a purchase Completed -> CheckedIn. Customer-only.
func (s *LedgerService) CheckIn(ctx context.Context, caller domain.Address, purchaseID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.IsOpen() {
		return apperror.ErrStoreNotOpen()
	}
	purchase, err := s.purchases.Get(ctx, purchaseID)
	if err != nil {
		return err
	}
	if err := s.access.RequireCustomer(purchase, caller); err != nil {
		return err
	}
	if !purchase.CanCheckIn() {
		return apperror.ErrInvalidPurchaseTransition(string(purchase.Status))
	}
	event, err := s.events.Get(ctx, purchase.EventID)
	if err != nil {
		return err
	}
	event.TicketsCheckedIn += purchase.Quantity
	if err := s.purchases.CheckIn(ctx, purchase); err != nil {
		return err
	}
	if err := s.events.Save(ctx, event); err != nil {
		return err
	}
	s.notify(ctx, domain.Notification{
		Kind:       domain.NotifCustomerCheckedIn,
		EventID:    event.ID,
		PurchaseID: purchase.ID,
	})

	s.log.Info().
		Uint64("purchase_id", purchase.ID).
		Uint64("event_id", event.ID).
		Msg("customer checked in")
	return nil
}

// ---- Queries ----

// StoreInfo returns a snapshot of the store aggregate.
func (s *LedgerService) StoreInfo(ctx context.Context) (*ports.StoreInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &ports.StoreInfo{
		Owner:             s.store.Owner,
		Status:            s.store.Status,
		HeldBalance:       s.store.HeldBalance,
		RefundableBalance: s.store.RefundableBalance,
		SettledBalance:    s.store.SettledBalance,
		EventsCounter:     s.store.EventsCounter,
		PurchasesCounter:  s.store.PurchasesCounter,
	}, nil
}

// EventInfo returns the identification snapshot of an event.
func (s *LedgerService) EventInfo(ctx context.Context, id uint64) (*ports.EventInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.events.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.EventInfo{
		ID:                event.ID,
		ExternalIDHash:    event.ExternalIDHash,
		Organizer:         event.Organizer,
		Name:              event.Name,
		StoreIncentiveBps: event.StoreIncentiveBps,
		TicketPrice:       event.TicketPrice,
		TicketsOnSale:     event.TicketsOnSale,
		Status:            event.Status,
	}, nil
}

// EventSalesInfo returns the accounting snapshot of an event.
func (s *LedgerService) EventSalesInfo(ctx context.Context, id uint64) (*ports.EventSalesInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.events.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.EventSalesInfo{
		ID:                event.ID,
		TicketsSold:       event.TicketsSold,
		TicketsLeft:       event.TicketsLeft,
		TicketsCancelled:  event.TicketsCancelled,
		TicketsRefunded:   event.TicketsRefunded,
		TicketsCheckedIn:  event.TicketsCheckedIn,
		EventBalance:      event.EventBalance,
		RefundableBalance: event.RefundableBalance,
	}, nil
}

// PurchaseInfo returns the snapshot of a purchase record.
func (s *LedgerService) PurchaseInfo(ctx context.Context, id uint64) (*ports.PurchaseInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	purchase, err := s.purchases.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.PurchaseInfo{
		ID:             purchase.ID,
		EventID:        purchase.EventID,
		Status:         purchase.Status,
		ExternalIDHash: purchase.ExternalIDHash,
		Timestamp:      purchase.Timestamp,
		Customer:       purchase.Customer,
		CustomerIDHash: purchase.CustomerIDHash,
		Quantity:       purchase.Quantity,
		Total:          purchase.Total,
	}, nil
}

// Notifications returns up to limit transition records with sequence > after.
func (s *LedgerService) Notifications(ctx context.Context, after uint64, limit int) ([]domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.journal.List(ctx, after, limit)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return list, nil
}

// notify appends exactly one transition record for a successful command.
// The journal write is best-effort once the command has committed: a failing
// durable backend must not roll back ledger state.
func (s *LedgerService) notify(ctx context.Context, n domain.Notification) {
	s.notifSeq++
	n.Sequence = s.notifSeq
	n.RecordedAt = time.Now().UTC()
	if err := s.journal.Append(ctx, n); err != nil {
		s.log.Warn().Err(err).Uint64("sequence", n.Sequence).Str("kind", string(n.Kind)).Msg("notification append failed")
	}
}
