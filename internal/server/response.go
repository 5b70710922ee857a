package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matthieukhl/storefront/internal/service"
	"github.com/matthieukhl/storefront/internal/store"
)

// respondError maps service and store errors to the status-code contract
// and a structured envelope. Internal failures get a stable message so raw
// diagnostics never leak to clients.
func (s *Server) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidOrder), errors.Is(err, store.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
