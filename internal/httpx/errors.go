package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ssstores/storefront/internal/apperr"
)

// StatusFrom maps an app error onto an HTTP status and a client-facing
// message. Anything outside the taxonomy becomes a generic 500.
func StatusFrom(err error) (int, string) {
	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperr.ErrEmptyCart):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// Error writes the JSON error body the storefront client expects.
func Error(c *gin.Context, err error) {
	status, msg := StatusFrom(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Any("err", err),
		)
	}
	c.JSON(status, gin.H{"error": msg})
}
