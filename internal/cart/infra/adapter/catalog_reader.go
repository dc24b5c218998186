package adapter

import (
	"context"

	catalogapp "github.com/ssstores/storefront/internal/catalog/app"
	catalogdomain "github.com/ssstores/storefront/internal/catalog/domain"
)

// CatalogServiceReader lets the cart resolve products without depending
// on the catalog service type directly.
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
