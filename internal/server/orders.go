package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/matthieukhl/storefront/internal/models"
)

func (s *Server) placeOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order request"})
		return
	}

	resp, err := s.orders.PlaceOrder(c.Request.Context(), &req)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) getOrders(c *gin.Context) {
	responses, err := s.orders.GetAllOrders(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses)
}

// getOrderByID resolves by the internal numeric key, not the external token.
func (s *Server) getOrderByID(c *gin.Context) {
	id, ok := parseID(c, "orderId")
	if !ok {
		return
	}

	resp, err := s.orders.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
