package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func testPolicy() Policy {
	return Policy{
		FreeShippingThreshold: decimal.NewFromInt(50),
		FlatShippingFee:       decimal.NewFromFloat(5.99),
		TaxRate:               decimal.NewFromFloat(0.08),
	}
}

func TestQuoteMeetsFreeShippingThreshold(t *testing.T) {
	// 2 × 25.00 = 50.00 meets the threshold exactly.
	q := testPolicy().Quote([]Line{{UnitPrice: decimal.NewFromFloat(25.00), Quantity: 2}})

	if got := q.Subtotal.StringFixed(2); got != "50.00" {
		t.Fatalf("subtotal: got %s", got)
	}
	if !q.Shipping.IsZero() {
		t.Fatalf("shipping: expected free, got %s", q.Shipping)
	}
	if got := q.Tax.StringFixed(2); got != "4.00" {
		t.Fatalf("tax: got %s", got)
	}
	if got := q.GrandTotal.StringFixed(2); got != "54.00" {
		t.Fatalf("grand total: got %s", got)
	}
}

func TestQuoteBelowThresholdChargesFlatFee(t *testing.T) {
	q := testPolicy().Quote([]Line{{UnitPrice: decimal.NewFromFloat(19.99), Quantity: 1}})

	if got := q.Shipping.StringFixed(2); got != "5.99" {
		t.Fatalf("shipping: got %s", got)
	}
	// 19.99 + 5.99 + 1.5992 = 27.5792, rounded only at presentation.
	if got := q.GrandTotal.StringFixed(2); got != "27.58" {
		t.Fatalf("grand total: got %s", got)
	}
}

func TestSubtotalNoIntermediateRounding(t *testing.T) {
	// 3 × 0.335 = 1.005; a float or an eagerly rounded intermediate
	// would drift.
	sub := Subtotal([]Line{{UnitPrice: decimal.RequireFromString("0.335"), Quantity: 3}})
	if !sub.Equal(decimal.RequireFromString("1.005")) {
		t.Fatalf("subtotal: got %s", sub)
	}
}

func TestQuoteEmptyLines(t *testing.T) {
	q := testPolicy().Quote(nil)
	if !q.Subtotal.IsZero() {
		t.Fatalf("subtotal: got %s", q.Subtotal)
	}
	if got := q.Shipping.StringFixed(2); got != "5.99" {
		t.Fatalf("zero subtotal is below threshold, shipping: got %s", got)
	}
}
