package memory

import (
	"context"
	"sync"

	"ticket-store-ledger/internal/core/domain"
)

// Treasury implements ports.Treasury by accruing payouts per address. The
// real value transfer is the collaborator's business; the ledger only needs
// an accountable record of what left custody, to whom.
type Treasury struct {
	mu      sync.RWMutex
	payouts map[domain.Address]uint64
}

// NewTreasury creates an empty treasury.
func NewTreasury() *Treasury {
	return &Treasury{payouts: make(map[domain.Address]uint64)}
}

// Withdraw records a payout to the given address.
func (t *Treasury) Withdraw(ctx context.Context, to domain.Address, amount uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.payouts[to] += amount
	return nil
}

// PaidTo returns the cumulative amount withdrawn to an address.
func (t *Treasury) PaidTo(addr domain.Address) uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.payouts[addr]
}

// TotalPaid returns the cumulative amount withdrawn to all addresses.
func (t *Treasury) TotalPaid() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var sum uint64
	for _, v := range t.payouts {
		sum += v
	}
	return sum
}
