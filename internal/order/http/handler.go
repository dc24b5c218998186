package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ssstores/storefront/internal/apperr"
	"github.com/ssstores/storefront/internal/httpx"
	"github.com/ssstores/storefront/internal/order/app"
	"github.com/ssstores/storefront/internal/order/domain"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/orders", h.placeOrder)
	r.GET("/orders/:orderId", h.getOrder)
}

// RegisterAdmin mounts the order listing used by the admin dashboard.
func (h *Handler) RegisterAdmin(r gin.IRouter) {
	r.GET("/orders", h.listOrders)
}

type customerInfoRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

type paymentInfoRequest struct {
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber"`
}

type placeOrderRequest struct {
	SessionID    string              `json:"sessionId"`
	CustomerInfo customerInfoRequest `json:"customerInfo"`
	PaymentInfo  paymentInfoRequest  `json:"paymentInfo"`
}

func (h *Handler) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperr.ErrInvalidInput)
		return
	}

	order, err := h.svc.PlaceOrder(c.Request.Context(), req.SessionID,
		domain.CustomerInfo{
			FirstName: req.CustomerInfo.FirstName,
			LastName:  req.CustomerInfo.LastName,
			Email:     req.CustomerInfo.Email,
			Phone:     req.CustomerInfo.Phone,
			Address:   req.CustomerInfo.Address,
			City:      req.CustomerInfo.City,
			State:     req.CustomerInfo.State,
			ZipCode:   req.CustomerInfo.ZipCode,
			Country:   req.CustomerInfo.Country,
		},
		app.PaymentRequest{
			Method:     req.PaymentInfo.Method,
			CardNumber: req.PaymentInfo.CardNumber,
		},
	)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"order": gin.H{
			"id":                order.ID,
			"orderNumber":       order.OrderNumber,
			"total":             order.Total.StringFixed(2),
			"estimatedDelivery": order.EstimatedDelivery.Format(time.RFC3339),
		},
	})
}

func (h *Handler) getOrder(c *gin.Context) {
	order, err := h.svc.GetOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, orderJSON(order))
}

func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.svc.ListOrders(c.Request.Context())
	if err != nil {
		httpx.Error(c, err)
		return
	}

	out := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderJSON(o))
	}
	c.JSON(http.StatusOK, out)
}

func orderJSON(o domain.Order) gin.H {
	items := make([]gin.H, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, gin.H{
			"id":        it.LineID,
			"productId": it.ProductID,
			"quantity":  it.Quantity,
			"size":      it.Size,
			"addedAt":   it.AddedAt.Format(time.RFC3339),
			"price":     it.UnitPrice.InexactFloat64(),
			"product": gin.H{
				"id":       it.Product.ID,
				"title":    it.Product.Title,
				"category": it.Product.Category,
				"brand":    it.Product.Brand,
				"color":    it.Product.Color,
				"price":    it.Product.Price.InexactFloat64(),
				"image":    it.Product.Image,
			},
		})
	}

	return gin.H{
		"id":          o.ID,
		"orderNumber": o.OrderNumber,
		"items":       items,
		"customerInfo": gin.H{
			"firstName": o.CustomerInfo.FirstName,
			"lastName":  o.CustomerInfo.LastName,
			"email":     o.CustomerInfo.Email,
			"phone":     o.CustomerInfo.Phone,
			"address":   o.CustomerInfo.Address,
			"city":      o.CustomerInfo.City,
			"state":     o.CustomerInfo.State,
			"zipCode":   o.CustomerInfo.ZipCode,
			"country":   o.CustomerInfo.Country,
		},
		"paymentInfo": gin.H{
			"method": o.PaymentInfo.Method,
			"last4":  o.PaymentInfo.Last4,
		},
		"subtotal":          o.Subtotal.StringFixed(2),
		"shipping":          o.Shipping.StringFixed(2),
		"tax":               o.Tax.StringFixed(2),
		"total":             o.Total.StringFixed(2),
		"status":            o.Status,
		"createdAt":         o.CreatedAt.Format(time.RFC3339),
		"estimatedDelivery": o.EstimatedDelivery.Format(time.RFC3339),
	}
}
