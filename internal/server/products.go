package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/matthieukhl/storefront/internal/models"
	"github.com/matthieukhl/storefront/internal/service"
)

func (s *Server) getProducts(c *gin.Context) {
	products, err := s.products.GetAllProducts(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) getProductByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := s.products.GetProductByID(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (s *Server) createProduct(c *gin.Context) {
	product, upload, ok := parseProductForm(c)
	if !ok {
		return
	}

	created, err := s.products.SaveProduct(c.Request.Context(), product, upload)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, upload, ok := parseProductForm(c)
	if !ok {
		return
	}
	product.ID = id

	updated, err := s.products.SaveProduct(c.Request.Context(), product, upload)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := s.products.DeleteProduct(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

func (s *Server) getProductImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := s.products.GetProductByID(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if !product.HasImage() {
		c.JSON(http.StatusNotFound, gin.H{"error": "product has no image"})
		return
	}

	contentType := product.ImageType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, product.ImageData)
}

func (s *Server) searchProducts(c *gin.Context) {
	keyword := c.Query("keyword")

	products, err := s.products.SearchProducts(c.Request.Context(), keyword)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (s *Server) generateDescription(c *gin.Context) {
	name := c.Query("name")
	category := c.Query("category")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	text, err := s.products.GenerateDescription(c.Request.Context(), name, category)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.String(http.StatusOK, text)
}

func (s *Server) generateImage(c *gin.Context) {
	name := c.Query("name")
	category := c.Query("category")
	description := c.Query("description")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	data, err := s.products.GenerateImage(c.Request.Context(), name, category, description)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", data)
}

// parseProductForm reads the multipart product fields plus the optional
// imageFile part.
func parseProductForm(c *gin.Context) (*models.Product, *service.ImageUpload, bool) {
	price, err := decimal.NewFromString(c.PostForm("price"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return nil, nil, false
	}

	stock, err := strconv.Atoi(c.PostForm("stock"))
	if err != nil || stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stock"})
		return nil, nil, false
	}

	product := &models.Product{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Stock:       stock,
		Category:    c.PostForm("category"),
	}
	if product.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return nil, nil, false
	}

	upload, ok := parseImageFile(c)
	if !ok {
		return nil, nil, false
	}

	return product, upload, true
}

func parseImageFile(c *gin.Context) (*service.ImageUpload, bool) {
	fileHeader, err := c.FormFile("imageFile")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, true
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image upload"})
		return nil, false
	}

	// The file is read fully within this request; the http server cleans
	// up the multipart form afterwards.
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open uploaded image"})
		return nil, false
	}

	return &service.ImageUpload{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Reader:      file,
	}, true
}
