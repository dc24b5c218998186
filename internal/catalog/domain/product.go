package domain

import "github.com/shopspring/decimal"

// Product is immutable once the catalog is generated.
type Product struct {
	ID            int
	Title         string
	Category      string
	CategoryName  string
	Brand         string
	Color         string
	Price         decimal.Decimal
	OriginalPrice decimal.Decimal
	Discount      int
	Description   string
	Image         string
	Images        []string
	Stock         int
	InStock       bool
	Rating        float64
	Reviews       int
	Tags          []string
	Sizes         []string
	Featured      bool
	NewArrival    bool
	Bestseller    bool
}

type Category struct {
	Key  string
	Name string
}
