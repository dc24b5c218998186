package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ssstores/storefront/internal/apperr"
	"github.com/ssstores/storefront/internal/review/domain"
)

type Service struct {
	repo ReviewRepo
	now  func() time.Time
}

func NewService(repo ReviewRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) AddReview(ctx context.Context, productID, rating int, comment, customerName string) (domain.Review, error) {
	if productID <= 0 {
		return domain.Review{}, fmt.Errorf("product id is required: %w", apperr.ErrInvalidInput)
	}
	if rating < 1 || rating > 5 {
		return domain.Review{}, fmt.Errorf("rating must be between 1 and 5: %w", apperr.ErrInvalidInput)
	}

	review := domain.Review{
		ID:           uuid.NewString(),
		ProductID:    productID,
		Rating:       rating,
		Comment:      comment,
		CustomerName: customerName,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.Append(ctx, review); err != nil {
		return domain.Review{}, err
	}
	return review, nil
}

func (s *Service) ListReviews(ctx context.Context, productID int) ([]domain.Review, error) {
	return s.repo.ListByProduct(ctx, productID)
}
