package app

import (
	"context"

	"github.com/ssstores/storefront/internal/auth/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	// GetByEmail returns apperr.ErrNotFound for unknown addresses.
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Update(ctx context.Context, user domain.User) error
}
