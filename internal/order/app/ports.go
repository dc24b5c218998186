package app

import (
	"context"

	cartdomain "github.com/ssstores/storefront/internal/cart/domain"
	catalogdomain "github.com/ssstores/storefront/internal/catalog/domain"
	"github.com/ssstores/storefront/internal/order/domain"
)

type OrderRepo interface {
	Create(ctx context.Context, order domain.Order) error
	Get(ctx context.Context, id string) (domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}

type CartReader interface {
	// Lines returns apperr.ErrNotFound when the session has no cart.
	Lines(ctx context.Context, sessionID string) ([]cartdomain.LineItem, error)
	Clear(ctx context.Context, sessionID string) error
}

type CatalogReader interface {
	Product(ctx context.Context, id int) (catalogdomain.Product, error)
}
