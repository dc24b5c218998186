package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ssstores/storefront/internal/apperr"
	"github.com/ssstores/storefront/internal/cart/domain"
	catalogdomain "github.com/ssstores/storefront/internal/catalog/domain"
)

// CartLine is a stored line joined with its live product. Prices here
// track the catalog, not the price at add-to-cart time.
type CartLine struct {
	domain.LineItem
	Product catalogdomain.Product
}

type CartView struct {
	Items []CartLine
	Total decimal.Decimal
	Count int
}

type Service struct {
	repo    CartRepo
	catalog CatalogReader
}

func NewService(repo CartRepo, catalog CatalogReader) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// AddItem puts quantity units of a product into the session's cart and
// returns the resulting number of lines. Stock is display-only metadata
// and never checked here.
func (s *Service) AddItem(ctx context.Context, sessionID string, productID, quantity int, size string) (int, error) {
	if strings.TrimSpace(sessionID) == "" {
		return 0, fmt.Errorf("session id is required: %w", apperr.ErrInvalidInput)
	}
	if productID <= 0 {
		return 0, fmt.Errorf("product id is required: %w", apperr.ErrInvalidInput)
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return 0, fmt.Errorf("quantity must be positive: %w", apperr.ErrInvalidInput)
	}

	if _, err := s.catalog.Product(ctx, productID); err != nil {
		return 0, err
	}

	return s.repo.UpsertAdd(ctx, sessionID, domain.LineItem{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  quantity,
		Size:      size,
		AddedAt:   time.Now().UTC(),
	})
}

// GetCart resolves every line against the catalog. A session that has
// never added anything gets an empty view, not an error. A line whose
// product no longer resolves fails the whole request.
func (s *Service) GetCart(ctx context.Context, sessionID string) (CartView, error) {
	items, err := s.repo.Get(ctx, sessionID)
	if errors.Is(err, apperr.ErrNotFound) {
		return CartView{Items: []CartLine{}, Total: decimal.Zero}, nil
	}
	if err != nil {
		return CartView{}, err
	}

	lines := make([]CartLine, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		p, err := s.catalog.Product(ctx, item.ProductID)
		if err != nil {
			return CartView{}, err
		}
		lines = append(lines, CartLine{LineItem: item, Product: p})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return CartView{Items: lines, Total: total, Count: len(lines)}, nil
}

// UpdateItem replaces the line's quantity outright; zero or negative
// quantity deletes the line.
func (s *Service) UpdateItem(ctx context.Context, sessionID, itemID string, quantity int) error {
	if quantity <= 0 {
		return s.repo.Remove(ctx, sessionID, itemID)
	}
	return s.repo.SetQuantity(ctx, sessionID, itemID, quantity)
}

func (s *Service) RemoveItem(ctx context.Context, sessionID, itemID string) error {
	return s.repo.Remove(ctx, sessionID, itemID)
}

// Lines returns the stored lines without product resolution. Order
// placement resolves and snapshots prices itself.
func (s *Service) Lines(ctx context.Context, sessionID string) ([]domain.LineItem, error) {
	return s.repo.Get(ctx, sessionID)
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.repo.Clear(ctx, sessionID)
}
