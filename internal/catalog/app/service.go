package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ssstores/storefront/internal/apperr"
	"github.com/ssstores/storefront/internal/catalog/domain"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
	relatedCap      = 4
	featuredCap     = 8
)

type Filter struct {
	Category string
	Search   string
	Brand    string
	Sort     string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Page     int
	Limit    int
}

type Page struct {
	Products      []domain.Product
	TotalProducts int
	TotalPages    int
	CurrentPage   int
	HasNextPage   bool
	HasPrevPage   bool
}

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListProducts(ctx context.Context, f Filter) (Page, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return Page{}, err
	}

	filtered := filterProducts(all, f)
	sortProducts(filtered, f.Sort)

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Products:      filtered[start:end],
		TotalProducts: total,
		TotalPages:    totalPages,
		CurrentPage:   page,
		HasNextPage:   end < total,
		HasPrevPage:   page > 1,
	}, nil
}

// GetProduct returns the product and up to four related products from
// the same category, excluding the product itself.
func (s *Service) GetProduct(ctx context.Context, id int) (domain.Product, []domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, nil, fmt.Errorf("product id must be positive: %w", apperr.ErrInvalidInput)
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Product{}, nil, err
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return domain.Product{}, nil, err
	}

	related := make([]domain.Product, 0, relatedCap)
	for _, other := range all {
		if other.Category == p.Category && other.ID != p.ID {
			related = append(related, other)
			if len(related) == relatedCap {
				break
			}
		}
	}

	return p, related, nil
}

// Categories returns the distinct category key/name pairs in catalog order.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var out []domain.Category
	for _, p := range all {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, domain.Category{Key: p.Category, Name: p.CategoryName})
	}
	return out, nil
}

func (s *Service) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, featuredCap)
	for _, p := range all {
		if p.Featured {
			out = append(out, p)
			if len(out) == featuredCap {
				break
			}
		}
	}
	return out, nil
}

// AllProducts returns the whole catalog, used by the admin dashboard.
func (s *Service) AllProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.All(ctx)
}

func filterProducts(all []domain.Product, f Filter) []domain.Product {
	out := make([]domain.Product, 0, len(all))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, p := range all {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p domain.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func sortProducts(products []domain.Product, key string) {
	switch key {
	case "price-low":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case "price-high":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case "rating":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case "newest":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	}
}
