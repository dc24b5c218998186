package memory

import (
	"context"
	"sync"

	"github.com/ssstores/storefront/internal/review/domain"
)

type ReviewRepo struct {
	mu      sync.RWMutex
	reviews []domain.Review
}

func NewReviewRepo() *ReviewRepo {
	return &ReviewRepo{}
}

func (r *ReviewRepo) Append(_ context.Context, review domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviews = append(r.reviews, review)
	return nil
}

func (r *ReviewRepo) ListByProduct(_ context.Context, productID int) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Review, 0)
	for _, rv := range r.reviews {
		if rv.ProductID == productID {
			out = append(out, rv)
		}
	}
	return out, nil
}
