package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ssstores/storefront/internal/apperr"
	"github.com/ssstores/storefront/internal/cart/domain"
)

// CartRepo keeps session carts in process memory, the production store
// for cart state. Lost on restart by design.
type CartRepo struct {
	mu    sync.RWMutex
	carts map[string][]domain.LineItem
}

func NewCartRepo() *CartRepo {
	return &CartRepo{carts: make(map[string][]domain.LineItem)}
}

func (r *CartRepo) Get(_ context.Context, sessionID string) ([]domain.LineItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items, ok := r.carts[sessionID]
	if !ok {
		return nil, fmt.Errorf("cart for session %s: %w", sessionID, apperr.ErrNotFound)
	}

	out := make([]domain.LineItem, len(items))
	copy(out, items)
	return out, nil
}

func (r *CartRepo) UpsertAdd(_ context.Context, sessionID string, item domain.LineItem) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[sessionID]
	for i := range items {
		if items[i].ProductID == item.ProductID && items[i].Size == item.Size {
			items[i].Quantity += item.Quantity
			r.carts[sessionID] = items
			return len(items), nil
		}
	}

	items = append(items, item)
	r.carts[sessionID] = items
	return len(items), nil
}

func (r *CartRepo) SetQuantity(_ context.Context, sessionID, itemID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.carts[sessionID]
	if !ok {
		return fmt.Errorf("cart for session %s: %w", sessionID, apperr.ErrNotFound)
	}

	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = quantity
			return nil
		}
	}
	return fmt.Errorf("cart item %s: %w", itemID, apperr.ErrNotFound)
}

func (r *CartRepo) Remove(_ context.Context, sessionID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.carts[sessionID]
	if !ok {
		return fmt.Errorf("cart for session %s: %w", sessionID, apperr.ErrNotFound)
	}

	for i := range items {
		if items[i].ID == itemID {
			r.carts[sessionID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("cart item %s: %w", itemID, apperr.ErrNotFound)
}

func (r *CartRepo) Clear(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}
