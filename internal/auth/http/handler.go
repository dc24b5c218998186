package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ssstores/storefront/internal/apperr"
	"github.com/ssstores/storefront/internal/auth/app"
	"github.com/ssstores/storefront/internal/auth/domain"
	"github.com/ssstores/storefront/internal/httpx"
)

const (
	ctxUserID = "userID"
	ctxRole   = "userRole"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/auth/register", h.register)
	r.POST("/auth/login", h.login)
	r.POST("/auth/logout", h.logout)

	r.GET("/auth/me", h.Middleware(), h.me)
	r.PUT("/auth/updatedetails", h.Middleware(), h.updateDetails)
	r.PUT("/auth/updatepassword", h.Middleware(), h.updatePassword)
}

// Middleware validates the bearer token and stashes the user identity
// on the request context.
func (h *Handler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httpx.Error(c, apperr.ErrUnauthorized)
			c.Abort()
			return
		}

		userID, role, err := h.svc.ValidateToken(token)
		if err != nil {
			httpx.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxRole, role)
		c.Next()
	}
}

// RequireAdmin guards the admin dashboard endpoints.
func (h *Handler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRole) != domain.RoleAdmin {
			httpx.Error(c, apperr.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperr.ErrInvalidInput)
		return
	}

	user, token, err := h.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": userJSON(user)})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperr.ErrInvalidInput)
		return
	}

	user, token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": userJSON(user)})
}

func (h *Handler) logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) me(c *gin.Context) {
	user, err := h.svc.GetUser(c.Request.Context(), c.GetString(ctxUserID))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userJSON(user)})
}

type updateDetailsRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handler) updateDetails(c *gin.Context) {
	var req updateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperr.ErrInvalidInput)
		return
	}

	user, err := h.svc.UpdateDetails(c.Request.Context(), c.GetString(ctxUserID), req.Name, req.Email)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userJSON(user)})
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) updatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperr.ErrInvalidInput)
		return
	}

	if err := h.svc.UpdatePassword(c.Request.Context(), c.GetString(ctxUserID), req.CurrentPassword, req.NewPassword); err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func userJSON(u domain.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"role":      u.Role,
		"createdAt": u.CreatedAt.Format(time.RFC3339),
	}
}
