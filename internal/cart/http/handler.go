package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ssstores/storefront/internal/apperr"
	"github.com/ssstores/storefront/internal/cart/app"
	catalogdomain "github.com/ssstores/storefront/internal/catalog/domain"
	"github.com/ssstores/storefront/internal/httpx"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/cart/add", h.addItem)
	r.GET("/cart/:sessionId", h.getCart)
	r.PUT("/cart/update", h.updateItem)
	r.DELETE("/cart/remove", h.removeItem)
}

type addItemRequest struct {
	SessionID string `json:"sessionId"`
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

func (h *Handler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperr.ErrInvalidInput)
		return
	}

	count, err := h.svc.AddItem(c.Request.Context(), req.SessionID, req.ProductID, req.Quantity, req.Size)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Product added to cart",
		"cartCount": count,
	})
}

func (h *Handler) getCart(c *gin.Context) {
	view, err := h.svc.GetCart(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		httpx.Error(c, err)
		return
	}

	items := make([]gin.H, 0, len(view.Items))
	for _, line := range view.Items {
		items = append(items, gin.H{
			"id":        line.ID,
			"productId": line.ProductID,
			"quantity":  line.Quantity,
			"size":      line.Size,
			"addedAt":   line.AddedAt.Format(time.RFC3339),
			"product":   productJSON(line.Product),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": view.Total.StringFixed(2),
		"count": view.Count,
	})
}

type updateItemRequest struct {
	SessionID string `json:"sessionId"`
	ItemID    string `json:"itemId"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) updateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperr.ErrInvalidInput)
		return
	}

	if err := h.svc.UpdateItem(c.Request.Context(), req.SessionID, req.ItemID, req.Quantity); err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully"})
}

type removeItemRequest struct {
	SessionID string `json:"sessionId"`
	ItemID    string `json:"itemId"`
}

func (h *Handler) removeItem(c *gin.Context) {
	var req removeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperr.ErrInvalidInput)
		return
	}

	if err := h.svc.RemoveItem(c.Request.Context(), req.SessionID, req.ItemID); err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func productJSON(p catalogdomain.Product) gin.H {
	return gin.H{
		"id":       p.ID,
		"title":    p.Title,
		"category": p.Category,
		"brand":    p.Brand,
		"color":    p.Color,
		"price":    p.Price.InexactFloat64(),
		"image":    p.Image,
		"stock":    p.Stock,
		"inStock":  p.InStock,
		"sizes":    p.Sizes,
	}
}
