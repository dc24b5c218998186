package memory

import (
	"context"
	"fmt"

	"github.com/ssstores/storefront/internal/apperr"
	"github.com/ssstores/storefront/internal/catalog/domain"
)

// ProductRepo serves the generated catalog. Products are never mutated
// after construction, so reads need no locking.
type ProductRepo struct {
	products []domain.Product
	byID     map[int]int
}

func NewProductRepo(products []domain.Product) *ProductRepo {
	byID := make(map[int]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &ProductRepo{products: products, byID: byID}
}

func (r *ProductRepo) Get(_ context.Context, id int) (domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %d: %w", id, apperr.ErrNotFound)
	}
	return r.products[i], nil
}

func (r *ProductRepo) All(_ context.Context) ([]domain.Product, error) {
	return r.products, nil
}
