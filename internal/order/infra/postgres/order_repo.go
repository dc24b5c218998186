package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ssstores/storefront/internal/apperr"
	"github.com/ssstores/storefront/internal/order/domain"
)

type orderRow struct {
	ID          string `gorm:"primaryKey"`
	OrderNumber string `gorm:"uniqueIndex"`

	CustomerFirstName string
	CustomerLastName  string
	CustomerEmail     string
	CustomerPhone     string
	CustomerAddress   string
	CustomerCity      string
	CustomerState     string
	CustomerZipCode   string
	CustomerCountry   string

	PaymentMethod string
	PaymentLast4  string

	Subtotal decimal.Decimal `gorm:"type:numeric(12,4)"`
	Shipping decimal.Decimal `gorm:"type:numeric(12,4)"`
	Tax      decimal.Decimal `gorm:"type:numeric(12,4)"`
	Total    decimal.Decimal `gorm:"type:numeric(12,4)"`

	Status            string
	CreatedAt         time.Time
	EstimatedDelivery time.Time

	Items []orderItemRow `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (orderRow) TableName() string { return "orders" }

type orderItemRow struct {
	ID      uint   `gorm:"primaryKey;autoIncrement"`
	OrderID string `gorm:"index"`

	LineID    string
	ProductID int
	Quantity  int
	Size      string
	AddedAt   time.Time
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,4)"`

	ProductTitle    string
	ProductCategory string
	ProductBrand    string
	ProductColor    string
	ProductPrice    decimal.Decimal `gorm:"type:numeric(12,4)"`
	ProductImage    string
}

func (orderItemRow) TableName() string { return "order_items" }

// OrderRepo persists orders with gorm; the production backend when
// STORAGE_DRIVER=postgres.
type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) (*OrderRepo, error) {
	if err := db.AutoMigrate(&orderRow{}, &orderItemRow{}); err != nil {
		return nil, fmt.Errorf("migrate order tables: %w", err)
	}
	return &OrderRepo{db: db}, nil
}

func (r *OrderRepo) Create(ctx context.Context, order domain.Order) error {
	row := toRow(order)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create order %s: %w", order.ID, err)
	}
	return nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	var row orderRow
	err := r.db.WithContext(ctx).Preload("Items").First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, fmt.Errorf("order %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return domain.Order{}, err
	}
	return fromRow(row), nil
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	var rows []orderRow
	if err := r.db.WithContext(ctx).Preload("Items").Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRow(row))
	}
	return out, nil
}

func toRow(o domain.Order) orderRow {
	items := make([]orderItemRow, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemRow{
			OrderID:         o.ID,
			LineID:          it.LineID,
			ProductID:       it.ProductID,
			Quantity:        it.Quantity,
			Size:            it.Size,
			AddedAt:         it.AddedAt,
			UnitPrice:       it.UnitPrice,
			ProductTitle:    it.Product.Title,
			ProductCategory: it.Product.Category,
			ProductBrand:    it.Product.Brand,
			ProductColor:    it.Product.Color,
			ProductPrice:    it.Product.Price,
			ProductImage:    it.Product.Image,
		})
	}

	return orderRow{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		CustomerFirstName: o.CustomerInfo.FirstName,
		CustomerLastName:  o.CustomerInfo.LastName,
		CustomerEmail:     o.CustomerInfo.Email,
		CustomerPhone:     o.CustomerInfo.Phone,
		CustomerAddress:   o.CustomerInfo.Address,
		CustomerCity:      o.CustomerInfo.City,
		CustomerState:     o.CustomerInfo.State,
		CustomerZipCode:   o.CustomerInfo.ZipCode,
		CustomerCountry:   o.CustomerInfo.Country,
		PaymentMethod:     o.PaymentInfo.Method,
		PaymentLast4:      o.PaymentInfo.Last4,
		Subtotal:          o.Subtotal,
		Shipping:          o.Shipping,
		Tax:               o.Tax,
		Total:             o.Total,
		Status:            o.Status,
		CreatedAt:         o.CreatedAt,
		EstimatedDelivery: o.EstimatedDelivery,
		Items:             items,
	}
}

func fromRow(row orderRow) domain.Order {
	items := make([]domain.OrderItem, 0, len(row.Items))
	for _, it := range row.Items {
		items = append(items, domain.OrderItem{
			LineID:    it.LineID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Size:      it.Size,
			AddedAt:   it.AddedAt,
			UnitPrice: it.UnitPrice,
			Product: domain.ProductSnapshot{
				ID:       it.ProductID,
				Title:    it.ProductTitle,
				Category: it.ProductCategory,
				Brand:    it.ProductBrand,
				Color:    it.ProductColor,
				Price:    it.ProductPrice,
				Image:    it.ProductImage,
			},
		})
	}

	return domain.Order{
		ID:          row.ID,
		OrderNumber: row.OrderNumber,
		Items:       items,
		CustomerInfo: domain.CustomerInfo{
			FirstName: row.CustomerFirstName,
			LastName:  row.CustomerLastName,
			Email:     row.CustomerEmail,
			Phone:     row.CustomerPhone,
			Address:   row.CustomerAddress,
			City:      row.CustomerCity,
			State:     row.CustomerState,
			ZipCode:   row.CustomerZipCode,
			Country:   row.CustomerCountry,
		},
		PaymentInfo: domain.PaymentInfo{
			Method: row.PaymentMethod,
			Last4:  row.PaymentLast4,
		},
		Subtotal:          row.Subtotal,
		Shipping:          row.Shipping,
		Tax:               row.Tax,
		Total:             row.Total,
		Status:            row.Status,
		CreatedAt:         row.CreatedAt,
		EstimatedDelivery: row.EstimatedDelivery,
	}
}
