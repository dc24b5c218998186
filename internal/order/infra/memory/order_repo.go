package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ssstores/storefront/internal/apperr"
	"github.com/ssstores/storefront/internal/order/domain"
)

// OrderRepo is the append-only in-memory order store.
type OrderRepo struct {
	mu     sync.RWMutex
	orders []domain.Order
	byID   map[string]int
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{byID: make(map[string]int)}
}

func (r *OrderRepo) Create(_ context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[order.ID]; exists {
		return fmt.Errorf("order %s already exists: %w", order.ID, apperr.ErrInvalidInput)
	}

	r.byID[order.ID] = len(r.orders)
	r.orders = append(r.orders, order)
	return nil
}

func (r *OrderRepo) Get(_ context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return domain.Order{}, fmt.Errorf("order %s: %w", id, apperr.ErrNotFound)
	}
	return r.orders[i], nil
}

func (r *OrderRepo) List(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

// Len reports the number of stored orders.
func (r *OrderRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
