package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/matthieukhl/storefront/internal/models"
	"github.com/matthieukhl/storefront/internal/store"
	"github.com/matthieukhl/storefront/internal/store/storetest"
)

func newOrderServiceForTest() (*OrderService, *storetest.ProductStore, *storetest.OrderStore) {
	products := storetest.NewProductStore()
	orders := storetest.NewOrderStore(products)
	return NewOrderService(products, orders, zerolog.Nop()), products, orders
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

func TestPlaceOrderComputesTotals(t *testing.T) {
	svc, products, _ := newOrderServiceForTest()
	mug := seedProduct(t, products, "Mug", "9.99", 5)

	resp, err := svc.PlaceOrder(context.Background(), &models.OrderRequest{
		CustomerName: "Jane Doe",
		Email:        "jane@example.com",
		Items: []models.OrderItemRequest{
			{ProductID: mug.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	require.NotEmpty(t, resp.OrderID)
	require.Equal(t, models.StatusPlaced, resp.Status)
	require.Equal(t, time.Now().Format(models.DateFormat), resp.OrderDate)
	require.Len(t, resp.Items, 1)
	require.Equal(t, "Mug", resp.Items[0].ProductName)
	require.True(t, resp.Items[0].UnitPrice.Equal(decimal.RequireFromString("9.99")))
	require.True(t, resp.Items[0].Subtotal.Equal(decimal.RequireFromString("19.98")))
	require.True(t, resp.Total.Equal(decimal.RequireFromString("19.98")))

	stored, err := products.GetByID(context.Background(), mug.ID)
	require.NoError(t, err)
	require.Equal(t, 3, stored.Stock)
}

func TestPlaceOrderMultipleItems(t *testing.T) {
	svc, products, orders := newOrderServiceForTest()
	mug := seedProduct(t, products, "Mug", "9.99", 10)
	lamp := seedProduct(t, products, "Desk Lamp", "39.99", 10)
	tee := seedProduct(t, products, "Cotton T-Shirt", "19.00", 10)

	resp, err := svc.PlaceOrder(context.Background(), &models.OrderRequest{
		CustomerName: "Jane Doe",
		Email:        "jane@example.com",
		Items: []models.OrderItemRequest{
			{ProductID: mug.ID, Quantity: 1},
			{ProductID: lamp.ID, Quantity: 2},
			{ProductID: tee.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 3)

	// total == sum of subtotals
	sum := decimal.Zero
	for _, item := range resp.Items {
		sum = sum.Add(item.Subtotal)
	}
	require.True(t, resp.Total.Equal(sum))
	require.True(t, resp.Total.Equal(decimal.RequireFromString("146.97")))

	all, err := orders.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Len(t, all[0].Items, 3)
}

func TestPlaceOrderUnknownProductAbortsWholeOrder(t *testing.T) {
	svc, products, orders := newOrderServiceForTest()
	mug := seedProduct(t, products, "Mug", "9.99", 5)

	_, err := svc.PlaceOrder(context.Background(), &models.OrderRequest{
		CustomerName: "Jane Doe",
		Email:        "jane@example.com",
		Items: []models.OrderItemRequest{
			{ProductID: mug.ID, Quantity: 1},
			{ProductID: 999, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, ErrProductNotFound)

	// Nothing persisted, no stock touched
	all, err := orders.GetAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)

	stored, err := products.GetByID(context.Background(), mug.ID)
	require.NoError(t, err)
	require.Equal(t, 5, stored.Stock)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	svc, products, orders := newOrderServiceForTest()
	mug := seedProduct(t, products, "Mug", "9.99", 1)

	_, err := svc.PlaceOrder(context.Background(), &models.OrderRequest{
		CustomerName: "Jane Doe",
		Email:        "jane@example.com",
		Items: []models.OrderItemRequest{
			{ProductID: mug.ID, Quantity: 2},
		},
	})
	require.ErrorIs(t, err, store.ErrInsufficientStock)

	all, err := orders.GetAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestPlaceOrderValidation(t *testing.T) {
	svc, products, _ := newOrderServiceForTest()
	mug := seedProduct(t, products, "Mug", "9.99", 5)

	cases := []struct {
		name string
		req  models.OrderRequest
	}{
		{"missing customer name", models.OrderRequest{
			Email: "jane@example.com",
			Items: []models.OrderItemRequest{{ProductID: mug.ID, Quantity: 1}},
		}},
		{"missing email", models.OrderRequest{
			CustomerName: "Jane Doe",
			Items:        []models.OrderItemRequest{{ProductID: mug.ID, Quantity: 1}},
		}},
		{"no items", models.OrderRequest{
			CustomerName: "Jane Doe",
			Email:        "jane@example.com",
		}},
		{"zero quantity", models.OrderRequest{
			CustomerName: "Jane Doe",
			Email:        "jane@example.com",
			Items:        []models.OrderItemRequest{{ProductID: mug.ID, Quantity: 0}},
		}},
		{"negative product id", models.OrderRequest{
			CustomerName: "Jane Doe",
			Email:        "jane@example.com",
			Items:        []models.OrderItemRequest{{ProductID: -1, Quantity: 1}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.PlaceOrder(context.Background(), &tc.req)
			require.ErrorIs(t, err, ErrInvalidOrder)
		})
	}
}

func TestPlaceOrderGeneratesUniqueIdentifiers(t *testing.T) {
	svc, products, _ := newOrderServiceForTest()
	mug := seedProduct(t, products, "Mug", "9.99", 1000)

	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		resp, err := svc.PlaceOrder(context.Background(), &models.OrderRequest{
			CustomerName: "Jane Doe",
			Email:        "jane@example.com",
			Items: []models.OrderItemRequest{
				{ProductID: mug.ID, Quantity: 1},
			},
		})
		require.NoError(t, err)
		require.False(t, seen[resp.OrderID], "order identifier %s repeated", resp.OrderID)
		seen[resp.OrderID] = true
	}
	require.Len(t, seen, 1000)
}

func TestConcurrentOrdersNeverOversell(t *testing.T) {
	svc, products, orders := newOrderServiceForTest()
	mug := seedProduct(t, products, "Mug", "9.99", 1)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.PlaceOrder(context.Background(), &models.OrderRequest{
				CustomerName: "Jane Doe",
				Email:        "jane@example.com",
				Items: []models.OrderItemRequest{
					{ProductID: mug.ID, Quantity: 1},
				},
			})
		}(i)
	}
	wg.Wait()

	var successes, stockFailures int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, store.ErrInsufficientStock):
			stockFailures++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, successes)
	require.Equal(t, 1, stockFailures)

	all, err := orders.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)

	stored, err := products.GetByID(context.Background(), mug.ID)
	require.NoError(t, err)
	require.Equal(t, 0, stored.Stock)
}

func TestGetOrderByID(t *testing.T) {
	svc, products, _ := newOrderServiceForTest()
	mug := seedProduct(t, products, "Mug", "9.99", 5)

	placed, err := svc.PlaceOrder(context.Background(), &models.OrderRequest{
		CustomerName: "Jane Doe",
		Email:        "jane@example.com",
		Items: []models.OrderItemRequest{
			{ProductID: mug.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	resp, err := svc.GetOrderByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, placed.OrderID, resp.OrderID)
	require.True(t, resp.Total.Equal(placed.Total))

	_, err = svc.GetOrderByID(context.Background(), 42)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetAllOrdersSurvivesProductDeletion(t *testing.T) {
	svc, products, _ := newOrderServiceForTest()
	mug := seedProduct(t, products, "Mug", "9.99", 5)

	_, err := svc.PlaceOrder(context.Background(), &models.OrderRequest{
		CustomerName: "Jane Doe",
		Email:        "jane@example.com",
		Items: []models.OrderItemRequest{
			{ProductID: mug.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	require.NoError(t, products.Delete(context.Background(), mug.ID))

	all, err := svc.GetAllOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Len(t, all[0].Items, 1)

	// Item keeps its price snapshot, only the live name lookup is gone
	require.Empty(t, all[0].Items[0].ProductName)
	require.True(t, all[0].Items[0].Subtotal.Equal(decimal.RequireFromString("19.98")))
}
