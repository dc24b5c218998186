package app

import (
	"context"

	"github.com/ssstores/storefront/internal/catalog/domain"
)

type ProductRepo interface {
	Get(ctx context.Context, id int) (domain.Product, error)
	All(ctx context.Context) ([]domain.Product, error)
}
