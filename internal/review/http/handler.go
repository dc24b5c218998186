package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ssstores/storefront/internal/apperr"
	"github.com/ssstores/storefront/internal/httpx"
	"github.com/ssstores/storefront/internal/review/app"
	"github.com/ssstores/storefront/internal/review/domain"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/products/:id/reviews", h.addReview)
	r.GET("/products/:id/reviews", h.listReviews)
}

type addReviewRequest struct {
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	CustomerName string `json:"customerName"`
}

func (h *Handler) addReview(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.Error(c, apperr.ErrInvalidInput)
		return
	}

	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperr.ErrInvalidInput)
		return
	}

	review, err := h.svc.AddReview(c.Request.Context(), productID, req.Rating, req.Comment, req.CustomerName)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review added successfully",
		"review":  reviewJSON(review),
	})
}

func (h *Handler) listReviews(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.Error(c, apperr.ErrInvalidInput)
		return
	}

	reviews, err := h.svc.ListReviews(c.Request.Context(), productID)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	out := make([]gin.H, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, reviewJSON(rv))
	}
	c.JSON(http.StatusOK, out)
}

func reviewJSON(rv domain.Review) gin.H {
	return gin.H{
		"id":           rv.ID,
		"productId":    rv.ProductID,
		"rating":       rv.Rating,
		"comment":      rv.Comment,
		"customerName": rv.CustomerName,
		"createdAt":    rv.CreatedAt.Format(time.RFC3339),
	}
}
