package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const StatusConfirmed = "confirmed"

// Order is created exactly once per successful checkout and never
// mutated afterwards.
type Order struct {
	ID                string
	OrderNumber       string
	Items             []OrderItem
	CustomerInfo      CustomerInfo
	PaymentInfo       PaymentInfo
	Subtotal          decimal.Decimal
	Shipping          decimal.Decimal
	Tax               decimal.Decimal
	Total             decimal.Decimal
	Status            string
	CreatedAt         time.Time
	EstimatedDelivery time.Time
}

// OrderItem carries the cart line plus a snapshot of the product as it
// was at placement time, decoupled from later catalog changes.
type OrderItem struct {
	LineID    string
	ProductID int
	Quantity  int
	Size      string
	AddedAt   time.Time
	UnitPrice decimal.Decimal
	Product   ProductSnapshot
}

type ProductSnapshot struct {
	ID       int
	Title    string
	Category string
	Brand    string
	Color    string
	Price    decimal.Decimal
	Image    string
}

type CustomerInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
}

// PaymentInfo keeps the method and the last four card digits only; the
// full card number is never persisted.
type PaymentInfo struct {
	Method string
	Last4  string
}
