package memory

import (
	"context"
	"fmt"
	"sync"

	"ticket-store-ledger/internal/core/domain"
)

// PurchaseRepo implements ports.PurchaseRepository. Records are append-only:
// inserted once, then only status-mutated via Update, never deleted.
type PurchaseRepo struct {
	mu        sync.RWMutex
	purchases map[uint64]domain.Purchase
}

// NewPurchaseRepo creates an empty purchase store.
func NewPurchaseRepo() *PurchaseRepo {
	return &PurchaseRepo{purchases: make(map[uint64]domain.Purchase)}
}

// Insert stores a new purchase record. The ID must be unused.
func (r *PurchaseRepo) Insert(ctx context.Context, purchase *domain.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.purchases[purchase.ID]; exists {
		return fmt.Errorf("purchase %d already exists", purchase.ID)
	}
	r.purchases[purchase.ID] = *purchase
	return nil
}

// Get returns a copy of the record, or nil, nil when the ID is unknown.
func (r *PurchaseRepo) Get(ctx context.Context, id uint64) (*domain.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	purchase, ok := r.purchases[id]
	if !ok {
		return nil, nil
	}
	return &purchase, nil
}

// Update commits a mutated copy back to the store.
func (r *PurchaseRepo) Update(ctx context.Context, purchase *domain.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.purchases[purchase.ID]; !exists {
		return fmt.Errorf("purchase %d not found", purchase.ID)
	}
	r.purchases[purchase.ID] = *purchase
	return nil
}
