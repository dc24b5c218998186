package app

import (
	"context"

	"github.com/ssstores/storefront/internal/cart/domain"
	catalogdomain "github.com/ssstores/storefront/internal/catalog/domain"
)

type CartRepo interface {
	// Get returns the session's lines, apperr.ErrNotFound when the
	// session has never added anything.
	Get(ctx context.Context, sessionID string) ([]domain.LineItem, error)
	// UpsertAdd merges the item into an existing (product, size) line or
	// appends it, creating the cart lazily. Returns the line count.
	UpsertAdd(ctx context.Context, sessionID string, item domain.LineItem) (int, error)
	SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) error
	Remove(ctx context.Context, sessionID, itemID string) error
	Clear(ctx context.Context, sessionID string) error
}

type CatalogReader interface {
	Product(ctx context.Context, id int) (catalogdomain.Product, error)
}
