package app

import (
	"context"

	"github.com/ssstores/storefront/internal/review/domain"
)

type ReviewRepo interface {
	Append(ctx context.Context, review domain.Review) error
	ListByProduct(ctx context.Context, productID int) ([]domain.Review, error)
}
