package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ssstores/storefront/internal/catalog/app"
	"github.com/ssstores/storefront/internal/catalog/domain"
	"github.com/ssstores/storefront/internal/httpx"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/products", h.listProducts)
	r.GET("/products/:id", h.getProduct)
	r.GET("/categories", h.listCategories)
}

// RegisterAdmin mounts the unfiltered product dump for the admin
// dashboard.
func (h *Handler) RegisterAdmin(r gin.IRouter) {
	r.GET("/products", h.adminProducts)
}

func (h *Handler) adminProducts(c *gin.Context) {
	all, err := h.svc.AllProducts(c.Request.Context())
	if err != nil {
		httpx.Error(c, err)
		return
	}

	out := make([]gin.H, 0, len(all))
	for _, p := range all {
		out = append(out, productJSON(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) listProducts(c *gin.Context) {
	f := app.Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Brand:    c.Query("brand"),
		Sort:     c.Query("sort"),
	}
	f.Page, _ = strconv.Atoi(c.Query("page"))
	f.Limit, _ = strconv.Atoi(c.Query("limit"))
	f.MinPrice = parseDecimal(c.Query("minPrice"))
	f.MaxPrice = parseDecimal(c.Query("maxPrice"))

	page, err := h.svc.ListProducts(c.Request.Context(), f)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	products := make([]gin.H, 0, len(page.Products))
	for _, p := range page.Products {
		products = append(products, productJSON(p))
	}

	c.JSON(http.StatusOK, gin.H{
		"products":      products,
		"totalProducts": page.TotalProducts,
		"totalPages":    page.TotalPages,
		"currentPage":   page.CurrentPage,
		"hasNextPage":   page.HasNextPage,
		"hasPrevPage":   page.HasPrevPage,
	})
}

func (h *Handler) getProduct(c *gin.Context) {
	// "featured" shares the /products/:id position in the route tree.
	if c.Param("id") == "featured" {
		h.featuredProducts(c)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	p, related, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	body := productJSON(p)
	rel := make([]gin.H, 0, len(related))
	for _, r := range related {
		rel = append(rel, productJSON(r))
	}
	body["relatedProducts"] = rel

	c.JSON(http.StatusOK, body)
}

func (h *Handler) featuredProducts(c *gin.Context) {
	featured, err := h.svc.FeaturedProducts(c.Request.Context())
	if err != nil {
		httpx.Error(c, err)
		return
	}

	out := make([]gin.H, 0, len(featured))
	for _, p := range featured {
		out = append(out, productJSON(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) listCategories(c *gin.Context) {
	cats, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		httpx.Error(c, err)
		return
	}

	out := make([]gin.H, 0, len(cats))
	for _, cat := range cats {
		out = append(out, gin.H{"key": cat.Key, "name": cat.Name})
	}
	c.JSON(http.StatusOK, out)
}

func parseDecimal(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// productJSON renders a product the way the storefront client expects:
// prices as plain numbers, rounding applied only here.
func productJSON(p domain.Product) gin.H {
	return gin.H{
		"id":            p.ID,
		"title":         p.Title,
		"category":      p.Category,
		"categoryName":  p.CategoryName,
		"brand":         p.Brand,
		"color":         p.Color,
		"price":         p.Price.InexactFloat64(),
		"originalPrice": p.OriginalPrice.InexactFloat64(),
		"discount":      p.Discount,
		"description":   p.Description,
		"image":         p.Image,
		"images":        p.Images,
		"stock":         p.Stock,
		"inStock":       p.InStock,
		"rating":        p.Rating,
		"reviews":       p.Reviews,
		"tags":          p.Tags,
		"sizes":         p.Sizes,
		"featured":      p.Featured,
		"newArrival":    p.NewArrival,
		"bestseller":    p.Bestseller,
	}
}
