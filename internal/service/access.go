package service

import (
	"ticket-store-ledger/internal/core/domain"
	"ticket-store-ledger/pkg/apperror"
)

// AccessControl resolves a caller address against the three ledger roles.
// Every command goes through these checks instead of ad hoc comparisons.
type AccessControl struct{}

// RequireOwner rejects callers other than the store owner.
func (AccessControl) RequireOwner(store *domain.Store, caller domain.Address) error {
	if caller.IsZero() || caller != store.Owner {
		return apperror.ErrNotOwner()
	}
	return nil
}

// RequireOrganizer rejects callers other than the event's organizer.
func (AccessControl) RequireOrganizer(event *domain.Event, caller domain.Address) error {
	if caller.IsZero() || caller != event.Organizer {
		return apperror.ErrNotOrganizer()
	}
	return nil
}

// RequireCustomer rejects callers other than the purchase's customer.
func (AccessControl) RequireCustomer(purchase *domain.Purchase, caller domain.Address) error {
	if caller.IsZero() || caller != purchase.Customer {
		return apperror.ErrNotCustomer()
	}
	return nil
}

// VerifyPurchaseIdentity checks that the supplied external and customer
// identifiers hash-match the stored purchase record.
func (AccessControl) VerifyPurchaseIdentity(purchase *domain.Purchase, externalID, customerID string) error {
	if domain.HashID(externalID) != purchase.ExternalIDHash ||
		domain.HashID(customerID) != purchase.CustomerIDHash {
		return apperror.ErrIdentityMismatch()
	}
	return nil
}
