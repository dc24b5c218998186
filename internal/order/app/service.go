package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ssstores/storefront/internal/apperr"
	"github.com/ssstores/storefront/internal/order/domain"
	"github.com/ssstores/storefront/internal/pricing"
)

const deliveryLeadTime = 7 * 24 * time.Hour

// PaymentRequest is the raw checkout payload. Only the method and the
// last four card digits survive into the stored order.
type PaymentRequest struct {
	Method     string
	CardNumber string
}

type Service struct {
	orders  OrderRepo
	cart    CartReader
	catalog CatalogReader
	policy  pricing.Policy

	maxConcurrent int
	now           func() time.Time

	// One mutex per session: placement reads the cart, writes the order
	// and clears the cart as a unit, so two concurrent checkouts for the
	// same session must serialize.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(orders OrderRepo, cart CartReader, catalog CatalogReader, policy pricing.Policy, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		orders:        orders,
		cart:          cart,
		catalog:       catalog,
		policy:        policy,
		maxConcurrent: maxConcurrent,
		now:           time.Now,
		locks:         make(map[string]*sync.Mutex),
	}
}

func (s *Service) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	return l
}

// PlaceOrder converts the session's cart into an immutable order,
// snapshotting current product prices, and clears the cart. Payment is
// never validated against a processor; any complete payload is accepted.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, customer domain.CustomerInfo, payment PaymentRequest) (domain.Order, error) {
	if strings.TrimSpace(sessionID) == "" {
		return domain.Order{}, fmt.Errorf("session id is required: %w", apperr.ErrInvalidInput)
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	lines, err := s.cart.Lines(ctx, sessionID)
	if errors.Is(err, apperr.ErrNotFound) || (err == nil && len(lines) == 0) {
		return domain.Order{}, apperr.ErrEmptyCart
	}
	if err != nil {
		return domain.Order{}, err
	}

	items := make([]domain.OrderItem, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range lines {
		idx := idx
		g.Go(func() error {
			line := lines[idx]
			p, err := s.catalog.Product(gctx, line.ProductID)
			if err != nil {
				return fmt.Errorf("resolve product %d: %w", line.ProductID, err)
			}

			items[idx] = domain.OrderItem{
				LineID:    line.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Size:      line.Size,
				AddedAt:   line.AddedAt,
				UnitPrice: p.Price,
				Product: domain.ProductSnapshot{
					ID:       p.ID,
					Title:    p.Title,
					Category: p.Category,
					Brand:    p.Brand,
					Color:    p.Color,
					Price:    p.Price,
					Image:    p.Image,
				},
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Order{}, err
	}

	priceLines := make([]pricing.Line, len(items))
	for i, it := range items {
		priceLines[i] = pricing.Line{UnitPrice: it.UnitPrice, Quantity: it.Quantity}
	}
	quote := s.policy.Quote(priceLines)

	now := s.now().UTC()
	order := domain.Order{
		ID:           uuid.NewString(),
		OrderNumber:  orderNumber(now),
		Items:        items,
		CustomerInfo: customer,
		PaymentInfo: domain.PaymentInfo{
			Method: payment.Method,
			Last4:  last4(payment.CardNumber),
		},
		Subtotal:          quote.Subtotal,
		Shipping:          quote.Shipping,
		Tax:               quote.Tax,
		Total:             quote.GrandTotal,
		Status:            domain.StatusConfirmed,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(deliveryLeadTime),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return domain.Order{}, err
	}
	if err := s.cart.Clear(ctx, sessionID); err != nil {
		return domain.Order{}, err
	}

	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Order{}, fmt.Errorf("order id is required: %w", apperr.ErrInvalidInput)
	}
	return s.orders.Get(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// orderNumber keeps the human-readable SS-prefixed timestamp form but
// adds a random suffix so two orders in the same millisecond cannot
// collide.
func orderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("SS%d%s", now.UnixMilli(), suffix)
}

func last4(cardNumber string) string {
	if cardNumber == "" {
		return ""
	}
	if len(cardNumber) <= 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}
