package app_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ssstores/storefront/internal/apperr"
	cartapp "github.com/ssstores/storefront/internal/cart/app"
	cartmemory "github.com/ssstores/storefront/internal/cart/infra/memory"
	catalogdomain "github.com/ssstores/storefront/internal/catalog/domain"
	"github.com/ssstores/storefront/internal/order/app"
	"github.com/ssstores/storefront/internal/order/domain"
	"github.com/ssstores/storefront/internal/order/infra/adapter"
	ordermemory "github.com/ssstores/storefront/internal/order/infra/memory"
	"github.com/ssstores/storefront/internal/pricing"
)

// mutableCatalog satisfies both the cart's and the order's catalog
// reader ports; prices can change between add-to-cart and checkout.
type mutableCatalog struct {
	prices map[int]decimal.Decimal
}

func (f *mutableCatalog) Product(_ context.Context, id int) (catalogdomain.Product, error) {
	price, ok := f.prices[id]
	if !ok {
		return catalogdomain.Product{}, fmt.Errorf("product %d: %w", id, apperr.ErrNotFound)
	}
	return catalogdomain.Product{ID: id, Title: fmt.Sprintf("Product %d", id), Price: price}, nil
}

type fixture struct {
	catalog *mutableCatalog
	cart    *cartapp.Service
	orders  *ordermemory.OrderRepo
	svc     *app.Service
}

func newFixture() *fixture {
	catalog := &mutableCatalog{prices: map[int]decimal.Decimal{
		7:  decimal.NewFromFloat(25.00),
		12: decimal.NewFromFloat(9.50),
	}}
	cartSvc := cartapp.NewService(cartmemory.NewCartRepo(), catalog)
	orders := ordermemory.NewOrderRepo()

	policy := pricing.Policy{
		FreeShippingThreshold: decimal.NewFromInt(50),
		FlatShippingFee:       decimal.NewFromFloat(5.99),
		TaxRate:               decimal.NewFromFloat(0.08),
	}

	svc := app.NewService(orders, adapter.NewCartServiceReader(cartSvc), catalog, policy, 10)
	return &fixture{catalog: catalog, cart: cartSvc, orders: orders, svc: svc}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	t.Run("nonexistent session", func(t *testing.T) {
		_, err := f.svc.PlaceOrder(ctx, "ghost", orderCustomer(), app.PaymentRequest{Method: "card"})
		if !errors.Is(err, apperr.ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("no order record created", func(t *testing.T) {
		if f.orders.Len() != 0 {
			t.Fatalf("expected 0 orders, got %d", f.orders.Len())
		}
	})
}

func TestPlaceOrderHappyPath(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	if _, err := f.cart.AddItem(ctx, "s1", 7, 2, "M"); err != nil {
		t.Fatal(err)
	}

	order, err := f.svc.PlaceOrder(ctx, "s1", orderCustomer(), app.PaymentRequest{
		Method:     "card",
		CardNumber: "4111111111111111",
	})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	// 2 × 25.00 = 50.00 meets the free-shipping threshold; tax is 8%.
	if got := order.Subtotal.StringFixed(2); got != "50.00" {
		t.Fatalf("subtotal: got %s", got)
	}
	if !order.Shipping.IsZero() {
		t.Fatalf("shipping: expected 0, got %s", order.Shipping)
	}
	if got := order.Tax.StringFixed(2); got != "4.00" {
		t.Fatalf("tax: got %s", got)
	}
	if got := order.Total.StringFixed(2); got != "54.00" {
		t.Fatalf("total: got %s", got)
	}

	if len(order.Items) != 1 {
		t.Fatalf("expected 1 order item, got %d", len(order.Items))
	}
	if order.Status != "confirmed" {
		t.Fatalf("status: got %s", order.Status)
	}
	if !strings.HasPrefix(order.OrderNumber, "SS") {
		t.Fatalf("order number missing SS prefix: %s", order.OrderNumber)
	}
	if got := order.EstimatedDelivery.Sub(order.CreatedAt).Hours(); got != 7*24 {
		t.Fatalf("estimated delivery: got %v hours after creation", got)
	}

	if order.PaymentInfo.Last4 != "1111" {
		t.Fatalf("last4: got %s", order.PaymentInfo.Last4)
	}
	if order.PaymentInfo.Method != "card" {
		t.Fatalf("method: got %s", order.PaymentInfo.Method)
	}

	t.Run("cart cleared", func(t *testing.T) {
		view, err := f.cart.GetCart(ctx, "s1")
		if err != nil {
			t.Fatal(err)
		}
		if view.Count != 0 {
			t.Fatalf("expected empty cart after placement, got %d lines", view.Count)
		}
	})

	t.Run("exactly one record stored", func(t *testing.T) {
		if f.orders.Len() != 1 {
			t.Fatalf("expected 1 stored order, got %d", f.orders.Len())
		}
	})

	t.Run("round trip", func(t *testing.T) {
		got, err := f.svc.GetOrder(ctx, order.ID)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Total.Equal(order.Total) {
			t.Fatalf("round-trip total mismatch: %s vs %s", got.Total, order.Total)
		}
		if got.OrderNumber != order.OrderNumber {
			t.Fatalf("round-trip order number mismatch")
		}
	})
}

func TestPlaceOrderSnapshotsCurrentPrice(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	if _, err := f.cart.AddItem(ctx, "s1", 12, 1, ""); err != nil {
		t.Fatal(err)
	}

	// Price changes between add-to-cart and checkout must be reflected
	// in the order.
	f.catalog.prices[12] = decimal.NewFromFloat(14.00)

	order, err := f.svc.PlaceOrder(ctx, "s1", orderCustomer(), app.PaymentRequest{Method: "paypal"})
	if err != nil {
		t.Fatal(err)
	}
	if got := order.Items[0].UnitPrice.StringFixed(2); got != "14.00" {
		t.Fatalf("expected snapshotted price 14.00, got %s", got)
	}

	// And later catalog changes must not touch the stored order.
	f.catalog.prices[12] = decimal.NewFromFloat(99.00)
	stored, err := f.svc.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got := stored.Items[0].UnitPrice.StringFixed(2); got != "14.00" {
		t.Fatalf("stored order price drifted: %s", got)
	}
}

func TestPlaceOrderConcurrentSameSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	if _, err := f.cart.AddItem(ctx, "s1", 7, 1, ""); err != nil {
		t.Fatal(err)
	}

	const N = 8
	var placed, empty atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < N; i++ {
		g.Go(func() error {
			_, err := f.svc.PlaceOrder(gctx, "s1", orderCustomer(), app.PaymentRequest{Method: "card"})
			switch {
			case err == nil:
				placed.Add(1)
				return nil
			case errors.Is(err, apperr.ErrEmptyCart):
				empty.Add(1)
				return nil
			default:
				return err
			}
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent placement failed: %v", err)
	}

	if placed.Load() != 1 {
		t.Fatalf("expected exactly 1 successful placement, got %d", placed.Load())
	}
	if empty.Load() != N-1 {
		t.Fatalf("expected %d empty-cart failures, got %d", N-1, empty.Load())
	}
	if f.orders.Len() != 1 {
		t.Fatalf("expected 1 stored order, got %d", f.orders.Len())
	}
}

func TestGetOrderUnknown(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetOrder(context.Background(), "nope")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderNumbersDistinct(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	numbers := make(map[string]bool)
	for i := 0; i < 10; i++ {
		session := fmt.Sprintf("s%d", i)
		if _, err := f.cart.AddItem(ctx, session, 7, 1, ""); err != nil {
			t.Fatal(err)
		}
		order, err := f.svc.PlaceOrder(ctx, session, orderCustomer(), app.PaymentRequest{Method: "card"})
		if err != nil {
			t.Fatal(err)
		}
		if numbers[order.OrderNumber] {
			t.Fatalf("duplicate order number %s", order.OrderNumber)
		}
		numbers[order.OrderNumber] = true
	}
}

func orderCustomer() domain.CustomerInfo {
	return domain.CustomerInfo{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Address:   "12 Analytical St",
		City:      "London",
		ZipCode:   "N1 9GU",
		Country:   "UK",
	}
}
