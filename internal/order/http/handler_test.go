package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ssstores/storefront/internal/apperr"
	cartapp "github.com/ssstores/storefront/internal/cart/app"
	cartmemory "github.com/ssstores/storefront/internal/cart/infra/memory"
	catalogdomain "github.com/ssstores/storefront/internal/catalog/domain"
	"github.com/ssstores/storefront/internal/order/app"
	"github.com/ssstores/storefront/internal/order/infra/adapter"
	ordermemory "github.com/ssstores/storefront/internal/order/infra/memory"
	"github.com/ssstores/storefront/internal/pricing"
)

type stubCatalog struct{}

func (stubCatalog) Product(_ context.Context, id int) (catalogdomain.Product, error) {
	if id != 7 {
		return catalogdomain.Product{}, fmt.Errorf("product %d: %w", id, apperr.ErrNotFound)
	}
	return catalogdomain.Product{ID: 7, Title: "Nike Black Hoodie", Price: decimal.NewFromInt(25)}, nil
}

func newTestRouter() (*gin.Engine, *cartapp.Service) {
	gin.SetMode(gin.TestMode)

	catalog := stubCatalog{}
	cartSvc := cartapp.NewService(cartmemory.NewCartRepo(), catalog)

	policy := pricing.Policy{
		FreeShippingThreshold: decimal.NewFromInt(50),
		FlatShippingFee:       decimal.NewFromFloat(5.99),
		TaxRate:               decimal.NewFromFloat(0.08),
	}
	svc := app.NewService(ordermemory.NewOrderRepo(), adapter.NewCartServiceReader(cartSvc), catalog, policy, 10)

	engine := gin.New()
	NewHandler(svc).Register(engine.Group("/api"))
	return engine, cartSvc
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return w, parsed
}

func TestPlaceOrderEndpoint(t *testing.T) {
	router, cartSvc := newTestRouter()

	t.Run("empty cart -> 400", func(t *testing.T) {
		w, body := doJSON(t, router, http.MethodPost, "/api/orders",
			`{"sessionId":"ghost","customerInfo":{},"paymentInfo":{"method":"card"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status: got %d, body %v", w.Code, body)
		}
	})

	t.Run("happy path", func(t *testing.T) {
		if _, err := cartSvc.AddItem(context.Background(), "s1", 7, 2, "M"); err != nil {
			t.Fatal(err)
		}

		w, body := doJSON(t, router, http.MethodPost, "/api/orders",
			`{"sessionId":"s1","customerInfo":{"firstName":"Ada"},"paymentInfo":{"method":"card","cardNumber":"4111111111111111"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status: got %d, body %v", w.Code, body)
		}

		order := body["order"].(map[string]any)
		if order["total"] != "54.00" {
			t.Fatalf("total: got %v", order["total"])
		}
		if !strings.HasPrefix(order["orderNumber"].(string), "SS") {
			t.Fatalf("orderNumber: got %v", order["orderNumber"])
		}

		t.Run("full order readable by id", func(t *testing.T) {
			w, full := doJSON(t, router, http.MethodGet, "/api/orders/"+order["id"].(string), "")
			if w.Code != http.StatusOK {
				t.Fatalf("status: got %d", w.Code)
			}
			payment := full["paymentInfo"].(map[string]any)
			if payment["last4"] != "1111" {
				t.Fatalf("last4: got %v", payment["last4"])
			}
			if _, leaked := payment["cardNumber"]; leaked {
				t.Fatal("full card number must never be persisted")
			}
			if full["status"] != "confirmed" {
				t.Fatalf("status: got %v", full["status"])
			}
		})
	})

	t.Run("unknown order -> 404", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodGet, "/api/orders/unknown-id", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("status: got %d", w.Code)
		}
	})
}
