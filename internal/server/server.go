package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/matthieukhl/storefront/internal/database"
	"github.com/matthieukhl/storefront/internal/service"
)

type Server struct {
	router   *gin.Engine
	db       *database.DB
	products *service.ProductService
	orders   *service.OrderService
	log      zerolog.Logger
}

// NewServer creates a new server instance
func NewServer(db *database.DB, products *service.ProductService, orders *service.OrderService, corsOrigin string, log zerolog.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(corsMiddleware(corsOrigin))

	server := &Server{
		router:   router,
		db:       db,
		products: products,
		orders:   orders,
		log:      log.With().Str("component", "server").Logger(),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)

		api.GET("/products", s.getProducts)
		api.GET("/products/search", s.searchProducts)
		api.GET("/product/:id", s.getProductByID)
		api.POST("/product", s.createProduct)
		api.PUT("/product/:id", s.updateProduct)
		api.DELETE("/product/:id", s.deleteProduct)
		api.GET("/product/:id/image", s.getProductImage)
		api.POST("/product/generate-description", s.generateDescription)
		api.POST("/product/generate-image", s.generateImage)

		api.POST("/orders/place", s.placeOrder)
		api.GET("/orders", s.getOrders)
		api.GET("/orders/:orderId", s.getOrderByID)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	// Check database health
	if err := s.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "storefront",
		"version": "0.1.0",
	})
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
