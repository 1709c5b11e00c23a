package service

import (
	"context"

	"ticket-store-ledger/internal/core/domain"
	"ticket-store-ledger/internal/core/ports"
	"ticket-store-ledger/pkg/apperror"
)

// PurchaseRegistry owns the collection of purchase records and their status
// transitions. Capacity and pricing come from the event record the ledger
// passes in.
type PurchaseRegistry struct {
	repo ports.PurchaseRepository
}

// NewPurchaseRegistry creates a PurchaseRegistry over the given storage.
func NewPurchaseRegistry(repo ports.PurchaseRepository) *PurchaseRegistry {
	return &PurchaseRegistry{repo: repo}
}

// Get fetches a purchase or fails with NF_002.
func (r *PurchaseRegistry) Get(ctx context.Context, id uint64) (*domain.Purchase, error) {
	purchase, err := r.repo.Get(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if purchase == nil {
		return nil, apperror.ErrPurchaseNotFound()
	}
	return purchase, nil
}

// Validate checks purchase input against the event before any mutation.
func (r *PurchaseRegistry) Validate(event *domain.Event, params ports.PurchaseTicketsParams) error {
	if !event.SalesOpen() {
		return apperror.ErrSalesNotOpen()
	}
	if params.Quantity == 0 {
		return apperror.ErrInvalidQuantity()
	}
	if params.Quantity > event.TicketsLeft {
		return apperror.ErrInsufficientTickets()
	}
	if params.ExternalID == "" {
		return apperror.ErrMissingExternalID()
	}
	if params.Timestamp == 0 {
		return apperror.ErrMissingTimestamp()
	}
	if params.CustomerID == "" {
		return apperror.ErrMissingCustomerID()
	}
	return nil
}

// Create stores a new purchase record with the minted ID.
func (r *PurchaseRegistry) Create(ctx context.Context, id uint64, customer domain.Address, total uint64, params ports.PurchaseTicketsParams) (*domain.Purchase, error) {
	purchase := &domain.Purchase{
		ID:             id,
		EventID:        params.EventID,
		ExternalIDHash: domain.HashID(params.ExternalID),
		Timestamp:      params.Timestamp,
		Customer:       customer,
		CustomerIDHash: domain.HashID(params.CustomerID),
		Quantity:       params.Quantity,
		Total:          total,
		Status:         domain.PurchaseStatusCompleted,
	}
	if err := r.repo.Insert(ctx, purchase); err != nil {
		return nil, apperror.InternalError(err)
	}
	return purchase, nil
}

// Cancel transitions Completed -> Cancelled.
func (r *PurchaseRegistry) Cancel(ctx context.Context, purchase *domain.Purchase) error {
	if !purchase.CanCancel() {
		return apperror.ErrInvalidPurchaseTransition(string(purchase.Status))
	}
	purchase.Status = domain.PurchaseStatusCancelled
	return r.save(ctx, purchase)
}

// Refund transitions Cancelled -> Refunded.
func (r *PurchaseRegistry) Refund(ctx context.Context, purchase *domain.Purchase) error {
	if !purchase.CanRefund() {
		return apperror.ErrInvalidPurchaseTransition(string(purchase.Status))
	}
	purchase.Status = domain.PurchaseStatusRefunded
	return r.save(ctx, purchase)
}

// CheckIn transitions Completed -> CheckedIn.
func (r *PurchaseRegistry) CheckIn(ctx context.Context, purchase *domain.Purchase) error {
	if !purchase.CanCheckIn() {
		return apperror.ErrInvalidPurchaseTransition(string(purchase.Status))
	}
	purchase.Status = domain.PurchaseStatusCheckedIn
	return r.save(ctx, purchase)
}

func (r *PurchaseRegistry) save(ctx context.Context, purchase *domain.Purchase) error {
	if err := r.repo.Update(ctx, purchase); err != nil {
		return apperror.InternalError(err)
	}
	return nil
}
