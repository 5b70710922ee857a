package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/matthieukhl/storefront/internal/genai/describe"
	"github.com/matthieukhl/storefront/internal/genai/image"
	"github.com/matthieukhl/storefront/internal/models"
	"github.com/matthieukhl/storefront/internal/service"
	"github.com/matthieukhl/storefront/internal/store/storetest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testOrigin = "http://localhost:5173"

func newTestServer() (*Server, *storetest.ProductStore) {
	products := storetest.NewProductStore()
	orders := storetest.NewOrderStore(products)

	productSvc := service.NewProductService(products,
		describe.NewMockDescriber("test-model"),
		image.NewMockImager("test-model"),
		zerolog.Nop())
	orderSvc := service.NewOrderService(products, orders, zerolog.Nop())

	return NewServer(nil, productSvc, orderSvc, testOrigin, zerolog.Nop()), products
}

func seedProduct(t *testing.T, products *storetest.ProductStore, name, price string, stock int) *models.Product {
	t.Helper()
	p := &models.Product{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		Category: "Test",
	}
	require.NoError(t, products.Create(context.Background(), p))
	return p
}

func doRequest(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestPlaceOrderEndpoint(t *testing.T) {
	srv, products := newTestServer()
	mug := seedProduct(t, products, "Mug", "9.99", 5)

	body, err := json.Marshal(models.OrderRequest{
		CustomerName: "Jane Doe",
		Email:        "jane@example.com",
		Items: []models.OrderItemRequest{
			{ProductID: mug.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/orders/place", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := doRequest(srv, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.OrderID)
	require.Equal(t, models.StatusPlaced, resp.Status)
	require.True(t, resp.Total.Equal(decimal.RequireFromString("19.98")))
}

func TestPlaceOrderBadJSON(t *testing.T) {
	srv, _ := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/orders/place", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := doRequest(srv, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "error")
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	srv, _ := newTestServer()

	body := `{"customerName":"Jane","email":"jane@example.com","items":[{"productId":999,"quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders/place", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := doRequest(srv, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	srv, products := newTestServer()
	mug := seedProduct(t, products, "Mug", "9.99", 1)

	body := fmt.Sprintf(`{"customerName":"Jane","email":"jane@example.com","items":[{"productId":%d,"quantity":2}]}`, mug.ID)
	req := httptest.NewRequest(http.MethodPost, "/api/orders/place", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := doRequest(srv, req)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestGetOrders(t *testing.T) {
	srv, _ := newTestServer()

	w := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, "[]", w.Body.String())
}

func TestGetOrderByIDNotFound(t *testing.T) {
	srv, _ := newTestServer()

	w := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/orders/42", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/orders/abc", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func productForm(t *testing.T, fields map[string]string, imageName string, imageBytes []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if imageName != "" {
		fw, err := mw.CreateFormFile("imageFile", imageName)
		require.NoError(t, err)
		_, err = fw.Write(imageBytes)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestProductLifecycle(t *testing.T) {
	srv, _ := newTestServer()

	// Create with image
	body, contentType := productForm(t, map[string]string{
		"name":        "Mug",
		"description": "350ml stoneware mug",
		"price":       "9.99",
		"stock":       "5",
		"category":    "Home & Kitchen",
	}, "mug.png", []byte{0x89, 0x50, 0x4e, 0x47})

	req := httptest.NewRequest(http.MethodPost, "/api/product", body)
	req.Header.Set("Content-Type", contentType)
	w := doRequest(srv, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Greater(t, created.ID, int64(0))
	require.Equal(t, "mug.png", created.ImageName)

	// Read back
	w = doRequest(srv, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/product/%d", created.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)

	// Serve the image with the stored content type
	w = doRequest(srv, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/product/%d/image", created.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, w.Body.Bytes())

	// Full replace via PUT
	body, contentType = productForm(t, map[string]string{
		"name":     "Travel Mug",
		"price":    "14.99",
		"stock":    "8",
		"category": "Home & Kitchen",
	}, "", nil)
	req = httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/product/%d", created.ID), body)
	req.Header.Set("Content-Type", contentType)
	w = doRequest(srv, req)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Travel Mug", updated.Name)
	require.Empty(t, updated.Description)

	// Delete, then both paths report not found
	w = doRequest(srv, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/product/%d", created.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(srv, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/product/%d", created.ID), nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(srv, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/product/%d", created.ID), nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProductMissing(t *testing.T) {
	srv, _ := newTestServer()

	body, contentType := productForm(t, map[string]string{
		"name":     "Ghost",
		"price":    "1.00",
		"stock":    "1",
		"category": "Test",
	}, "", nil)
	req := httptest.NewRequest(http.MethodPut, "/api/product/42", body)
	req.Header.Set("Content-Type", contentType)
	w := doRequest(srv, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProductInvalidPrice(t *testing.T) {
	srv, _ := newTestServer()

	body, contentType := productForm(t, map[string]string{
		"name":     "Mug",
		"price":    "not-a-price",
		"stock":    "5",
		"category": "Test",
	}, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/product", body)
	req.Header.Set("Content-Type", contentType)
	w := doRequest(srv, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductImageMissing(t *testing.T) {
	srv, products := newTestServer()
	mug := seedProduct(t, products, "Mug", "9.99", 5)

	w := doRequest(srv, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/product/%d/image", mug.ID), nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchProductsEndpoint(t *testing.T) {
	srv, products := newTestServer()
	seedProduct(t, products, "Steel Widget", "5.00", 10)

	w := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/products/search?keyword=WIDGET", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var results []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)

	// Empty result set, not an error
	w = doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/products/search?keyword=nothing", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, "[]", w.Body.String())
}

func TestGenerateDescriptionEndpoint(t *testing.T) {
	srv, _ := newTestServer()

	w := doRequest(srv, httptest.NewRequest(http.MethodPost, "/api/product/generate-description?name=Mug&category=Kitchen", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Mug")

	w = doRequest(srv, httptest.NewRequest(http.MethodPost, "/api/product/generate-description", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateImageEndpoint(t *testing.T) {
	srv, _ := newTestServer()

	w := doRequest(srv, httptest.NewRequest(http.MethodPost, "/api/product/generate-image?name=Mug&category=Kitchen&description=A+mug", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/png", w.Header().Get("Content-Type"))
	require.NotEmpty(t, w.Body.Bytes())
}

func TestCORSHeaders(t *testing.T) {
	srv, _ := newTestServer()

	w := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))

	w = doRequest(srv, httptest.NewRequest(http.MethodOptions, "/api/products", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
}
