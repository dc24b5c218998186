package app_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ssstores/storefront/internal/apperr"
	"github.com/ssstores/storefront/internal/cart/app"
	"github.com/ssstores/storefront/internal/cart/infra/memory"
	catalogdomain "github.com/ssstores/storefront/internal/catalog/domain"
)

type fakeCatalog struct {
	prices map[int]decimal.Decimal
}

func (f fakeCatalog) Product(_ context.Context, id int) (catalogdomain.Product, error) {
	price, ok := f.prices[id]
	if !ok {
		return catalogdomain.Product{}, fmt.Errorf("product %d: %w", id, apperr.ErrNotFound)
	}
	return catalogdomain.Product{ID: id, Price: price}, nil
}

func newTestService() *app.Service {
	catalog := fakeCatalog{prices: map[int]decimal.Decimal{
		7:  decimal.NewFromFloat(25.00),
		12: decimal.NewFromFloat(9.50),
	}}
	return app.NewService(memory.NewCartRepo(), catalog)
}

func TestAddItemThenGetCart(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	count, err := svc.AddItem(ctx, "s1", 7, 2, "M")
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 line, got %d", count)
	}

	view, err := svc.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}
	if view.Count != 1 {
		t.Fatalf("expected count 1, got %d", view.Count)
	}
	if got := view.Total.StringFixed(2); got != "50.00" {
		t.Fatalf("expected total 50.00, got %s", got)
	}
}

func TestAddItemMergesSameProductAndSize(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	if _, err := svc.AddItem(ctx, "s1", 7, 2, "M"); err != nil {
		t.Fatal(err)
	}
	count, err := svc.AddItem(ctx, "s1", 7, 3, "M")
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("expected merged single line, got %d lines", count)
	}

	view, err := svc.GetCart(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if view.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", view.Items[0].Quantity)
	}
}

func TestAddItemDifferentSizesStaySeparate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	if _, err := svc.AddItem(ctx, "s1", 7, 1, "M"); err != nil {
		t.Fatal(err)
	}
	count, err := svc.AddItem(ctx, "s1", 7, 1, "L")
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("expected 2 lines for distinct sizes, got %d", count)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := newTestService()

	_, err := svc.AddItem(context.Background(), "s1", 999, 1, "")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetCartUnknownSessionIsEmpty(t *testing.T) {
	svc := newTestService()

	view, err := svc.GetCart(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}
	if view.Count != 0 || len(view.Items) != 0 {
		t.Fatalf("expected empty view, got %+v", view)
	}
	if got := view.Total.StringFixed(2); got != "0.00" {
		t.Fatalf("expected total 0.00, got %s", got)
	}
}

func TestUpdateItemZeroQuantityRemovesLine(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	if _, err := svc.AddItem(ctx, "s1", 7, 2, "M"); err != nil {
		t.Fatal(err)
	}
	view, err := svc.GetCart(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	itemID := view.Items[0].ID

	if err := svc.UpdateItem(ctx, "s1", itemID, 0); err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}

	view, err = svc.GetCart(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if view.Count != 0 {
		t.Fatalf("expected line removed, cart has %d lines", view.Count)
	}
}

func TestUpdateItemReplacesQuantity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	if _, err := svc.AddItem(ctx, "s1", 7, 2, "M"); err != nil {
		t.Fatal(err)
	}
	view, _ := svc.GetCart(ctx, "s1")
	itemID := view.Items[0].ID

	if err := svc.UpdateItem(ctx, "s1", itemID, 9); err != nil {
		t.Fatal(err)
	}

	view, _ = svc.GetCart(ctx, "s1")
	if view.Items[0].Quantity != 9 {
		t.Fatalf("expected quantity replaced with 9, got %d", view.Items[0].Quantity)
	}
}

func TestUpdateItemMissingCartOrItem(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	t.Run("no cart", func(t *testing.T) {
		err := svc.UpdateItem(ctx, "ghost", "item-1", 3)
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		if _, err := svc.AddItem(ctx, "s1", 7, 1, ""); err != nil {
			t.Fatal(err)
		}
		err := svc.UpdateItem(ctx, "s1", "not-an-item", 3)
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	if _, err := svc.AddItem(ctx, "s1", 7, 1, "M"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddItem(ctx, "s1", 12, 1, ""); err != nil {
		t.Fatal(err)
	}
	view, _ := svc.GetCart(ctx, "s1")

	if err := svc.RemoveItem(ctx, "s1", view.Items[0].ID); err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}

	view, _ = svc.GetCart(ctx, "s1")
	if view.Count != 1 {
		t.Fatalf("expected 1 line left, got %d", view.Count)
	}

	err := svc.RemoveItem(ctx, "s1", "gone")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown item, got %v", err)
	}
}
