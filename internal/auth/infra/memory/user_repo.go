package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ssstores/storefront/internal/apperr"
	"github.com/ssstores/storefront/internal/auth/domain"
)

type UserRepo struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepo) Create(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return fmt.Errorf("email %s already registered: %w", user.Email, apperr.ErrInvalidInput)
	}

	r.byID[user.ID] = user
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return domain.User{}, fmt.Errorf("user %s: %w", id, apperr.ErrNotFound)
	}
	return user, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, fmt.Errorf("user %s: %w", email, apperr.ErrNotFound)
	}
	return r.byID[id], nil
}

func (r *UserRepo) Update(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.byID[user.ID]
	if !ok {
		return fmt.Errorf("user %s: %w", user.ID, apperr.ErrNotFound)
	}

	if prev.Email != user.Email {
		if _, taken := r.byEmail[user.Email]; taken {
			return fmt.Errorf("email %s already registered: %w", user.Email, apperr.ErrInvalidInput)
		}
		delete(r.byEmail, prev.Email)
		r.byEmail[user.Email] = user.ID
	}

	r.byID[user.ID] = user
	return nil
}
