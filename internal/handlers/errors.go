package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	dom "ControleGastos/internal/domain"
	"ControleGastos/internal/middleware"
	"ControleGastos/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps service and rule errors to status codes. Anything
// unexpected is logged and hidden behind a generic 500.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrEmailTaken),
		dom.IsRejection(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		log.ErrorContext(c.Request.Context(), "request failed",
			"error", err, "path", c.FullPath(), "request_id", middleware.RequestIDFromContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
