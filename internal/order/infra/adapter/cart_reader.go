package adapter

import (
	"context"

	cartapp "github.com/ssstores/storefront/internal/cart/app"
	cartdomain "github.com/ssstores/storefront/internal/cart/domain"
	catalogapp "github.com/ssstores/storefront/internal/catalog/app"
	catalogdomain "github.com/ssstores/storefront/internal/catalog/domain"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Lines(ctx context.Context, sessionID string) ([]cartdomain.LineItem, error) {
	return r.svc.Lines(ctx, sessionID)
}

func (r *CartServiceReader) Clear(ctx context.Context, sessionID string) error {
	return r.svc.Clear(ctx, sessionID)
}

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) Product(ctx context.Context, id int) (catalogdomain.Product, error) {
	p, _, err := r.svc.GetProduct(ctx, id)
	return p, err
}
