package service

import (
	"context"
	"math/bits"

	"ticket-store-ledger/internal/core/domain"
	"ticket-store-ledger/internal/core/ports"
	"ticket-store-ledger/pkg/apperror"
)

// AccountingEngine computes totals, incentive splits, and refundable
// reservations, and executes value transfers through the treasury. Every
// subtraction is preceded by an explicit sufficiency check; a failed check is
// an invariant breach (SYS_002), not a user error.
type AccountingEngine struct {
	treasury ports.Treasury
}

// NewAccountingEngine creates an AccountingEngine paying out through treasury.
func NewAccountingEngine(treasury ports.Treasury) *AccountingEngine {
	return &AccountingEngine{treasury: treasury}
}

// OrderTotal computes quantity x price, rejecting overflow.
func (a *AccountingEngine) OrderTotal(quantity, price uint64) (uint64, error) {
	hi, lo := bits.Mul64(quantity, price)
	if hi != 0 {
		return 0, apperror.Validation("order total overflows the value range")
	}
	return lo, nil
}

// RecordSale credits an accepted purchase to the event and store balances.
func (a *AccountingEngine) RecordSale(store *domain.Store, event *domain.Event, total uint64) {
	event.EventBalance += total
	store.HeldBalance += total
}

// ReserveRefund moves a cancelled purchase's total from the event balance
// into the refundable reserves. The value stays custodied; it is earmarked,
// not yet paid.
func (a *AccountingEngine) ReserveRefund(store *domain.Store, event *domain.Event, total uint64) error {
	if event.EventBalance < total {
		return apperror.ErrArithmeticFault("event balance below refund reservation")
	}
	event.EventBalance -= total
	event.RefundableBalance += total
	store.RefundableBalance += total
	return nil
}

// PayRefund releases a reserved refund back to the customer.
func (a *AccountingEngine) PayRefund(ctx context.Context, store *domain.Store, event *domain.Event, purchase *domain.Purchase) error {
	total := purchase.Total
	if event.RefundableBalance < total {
		return apperror.ErrArithmeticFault("event refundable balance below refund amount")
	}
	if store.RefundableBalance < total {
		return apperror.ErrArithmeticFault("store refundable balance below refund amount")
	}
	if store.HeldBalance < total {
		return apperror.ErrArithmeticFault("held balance below refund amount")
	}
	if err := a.treasury.Withdraw(ctx, purchase.Customer, total); err != nil {
		return apperror.InternalError(err)
	}
	event.RefundableBalance -= total
	store.RefundableBalance -= total
	store.HeldBalance -= total
	return nil
}

// Settle splits an event's net revenue between organizer and store owner.
// The incentive is floor basis-point division, so the store never receives a
// fractional unit more than entitled; the organizer share is withdrawn, the
// incentive stays custodied until the close-store sweep.
func (a *AccountingEngine) Settle(ctx context.Context, store *domain.Store, event *domain.Event) (payout, incentive uint64, err error) {
	netRevenue := event.EventBalance
	incentive = netRevenue * event.StoreIncentiveBps / domain.MaxIncentiveBps
	payout = netRevenue - incentive

	if store.HeldBalance < payout {
		return 0, 0, apperror.ErrArithmeticFault("held balance below settlement payout")
	}
	if payout > 0 {
		if err := a.treasury.Withdraw(ctx, event.Organizer, payout); err != nil {
			return 0, 0, apperror.InternalError(err)
		}
	}
	store.HeldBalance -= payout
	store.SettledBalance += incentive
	event.EventBalance = 0
	return payout, incentive, nil
}

// CancelEvent moves the event's entire remaining balance into the refundable
// reserves, unlocking the normal refund path for all outstanding purchases.
// No purchase is auto-refunded.
func (a *AccountingEngine) CancelEvent(store *domain.Store, event *domain.Event) {
	remaining := event.EventBalance
	event.EventBalance = 0
	event.RefundableBalance += remaining
	store.RefundableBalance += remaining
}

// SweepOnClose pays the owner everything not reserved for pending refunds.
// Refundable reservations survive closure so already-cancelled purchases
// remain refundable.
func (a *AccountingEngine) SweepOnClose(ctx context.Context, store *domain.Store) (uint64, error) {
	if store.HeldBalance < store.RefundableBalance {
		return 0, apperror.ErrArithmeticFault("held balance below refundable reserve")
	}
	sweep := store.HeldBalance - store.RefundableBalance
	if sweep > 0 {
		if err := a.treasury.Withdraw(ctx, store.Owner, sweep); err != nil {
			return 0, apperror.InternalError(err)
		}
	}
	store.HeldBalance -= sweep
	store.SettledBalance = 0
	return sweep, nil
}
