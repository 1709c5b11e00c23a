package service

import (
	"context"

	"ticket-store-ledger/internal/core/domain"
	"ticket-store-ledger/internal/core/ports"
	"ticket-store-ledger/pkg/apperror"
)

// EventRegistry owns the collection of event records and their status
// transitions. Role checks and store-level preconditions belong to the
// ledger; the registry enforces entity-level rules only.
type EventRegistry struct {
	repo ports.EventRepository
}

// NewEventRegistry creates an EventRegistry over the given storage.
func NewEventRegistry(repo ports.EventRepository) *EventRegistry {
	return &EventRegistry{repo: repo}
}

// Get fetches an event or fails with NF_001.
func (r *EventRegistry) Get(ctx context.Context, id uint64) (*domain.Event, error) {
	event, err := r.repo.Get(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if event == nil {
		return nil, apperror.ErrEventNotFound()
	}
	return event, nil
}

// Create validates and stores a new event record with the minted ID.
// Validation happens before any state is touched.
func (r *EventRegistry) Create(ctx context.Context, store *domain.Store, id uint64, params ports.CreateEventParams) (*domain.Event, error) {
	if params.Organizer.IsZero() || params.Organizer == store.Address {
		return nil, apperror.ErrOrganizerMustBeExternal()
	}
	if params.ExternalID == "" {
		return nil, apperror.ErrMissingExternalID()
	}
	if params.Name == "" {
		return nil, apperror.ErrMissingName()
	}
	if params.StoreIncentiveBps > domain.MaxIncentiveBps {
		return nil, apperror.ErrIncentiveOutOfRange()
	}
	if params.TicketsOnSale == 0 {
		return nil, apperror.ErrNoTicketsAvailable()
	}

	event := &domain.Event{
		ID:                id,
		ExternalIDHash:    domain.HashID(params.ExternalID),
		Organizer:         params.Organizer,
		Name:              params.Name,
		StoreIncentiveBps: params.StoreIncentiveBps,
		TicketPrice:       params.TicketPrice,
		TicketsOnSale:     params.TicketsOnSale,
		Status:            domain.EventStatusCreated,
		TicketsLeft:       params.TicketsOnSale,
	}
	if err := r.repo.Insert(ctx, event); err != nil {
		return nil, apperror.InternalError(err)
	}
	return event, nil
}

// StartSales transitions Created|SalesSuspended -> SalesStarted.
func (r *EventRegistry) StartSales(ctx context.Context, event *domain.Event) error {
	if !event.CanStartSales() {
		return apperror.ErrInvalidEventTransition(string(event.Status))
	}
	event.Status = domain.EventStatusSalesStarted
	return r.save(ctx, event)
}

// SuspendSales transitions SalesStarted -> SalesSuspended.
func (r *EventRegistry) SuspendSales(ctx context.Context, event *domain.Event) error {
	if !event.CanSuspendSales() {
		return apperror.ErrInvalidEventTransition(string(event.Status))
	}
	event.Status = domain.EventStatusSalesSuspended
	return r.save(ctx, event)
}

// EndSales transitions SalesStarted|SalesSuspended -> SalesFinished.
func (r *EventRegistry) EndSales(ctx context.Context, event *domain.Event) error {
	if !event.CanEndSales() {
		return apperror.ErrInvalidEventTransition(string(event.Status))
	}
	event.Status = domain.EventStatusSalesFinished
	return r.save(ctx, event)
}

// Complete transitions SalesFinished -> Completed.
func (r *EventRegistry) Complete(ctx context.Context, event *domain.Event) error {
	if !event.CanComplete() {
		return apperror.ErrInvalidEventTransition(string(event.Status))
	}
	event.Status = domain.EventStatusCompleted
	return r.save(ctx, event)
}

// CheckSettle rejects settlement from any state but Completed. A second
// settlement attempt gets the dedicated ST_006 code.
func (r *EventRegistry) CheckSettle(event *domain.Event) error {
	if event.Status == domain.EventStatusSettled {
		return apperror.ErrAlreadySettled()
	}
	if !event.CanSettle() {
		return apperror.ErrInvalidEventTransition(string(event.Status))
	}
	return nil
}

// CheckCancel rejects cancellation from Completed or terminal states.
func (r *EventRegistry) CheckCancel(event *domain.Event) error {
	if !event.CanCancel() {
		return apperror.ErrInvalidEventTransition(string(event.Status))
	}
	return nil
}

// Save persists a mutated event record.
func (r *EventRegistry) Save(ctx context.Context, event *domain.Event) error {
	return r.save(ctx, event)
}

func (r *EventRegistry) save(ctx context.Context, event *domain.Event) error {
	if err := r.repo.Update(ctx, event); err != nil {
		return apperror.InternalError(err)
	}
	return nil
}
