package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/matthieukhl/storefront/internal/models"
	"github.com/matthieukhl/storefront/internal/store"
)

type OrderService struct {
	products store.ProductStore
	orders   store.OrderStore
	log      zerolog.Logger
}

// NewOrderService creates the order service
func NewOrderService(products store.ProductStore, orders store.OrderStore, log zerolog.Logger) *OrderService {
	return &OrderService{
		products: products,
		orders:   orders,
		log:      log.With().Str("component", "order_service").Logger(),
	}
}

// PlaceOrder validates the request, snapshots current product prices,
// decrements stock and persists the order with its items atomically.
// A line item referencing an unknown product aborts the whole order.
func (s *OrderService) PlaceOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderResponse, error) {
	if err := validateOrderRequest(req); err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderID:      uuid.NewString(),
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Status:       models.StatusPlaced,
		OrderDate:    time.Now(),
	}

	productNames := make(map[int64]string, len(req.Items))
	for _, line := range req.Items {
		product, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("product %d: %w", line.ProductID, ErrProductNotFound)
			}
			return nil, err
		}

		unitPrice := product.Price
		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))

		order.Items = append(order.Items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
			Subtotal:  subtotal,
		})
		productNames[product.ID] = product.Name
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("order_id", order.OrderID).
		Int("items", len(order.Items)).
		Msg("order placed")

	resp := buildOrderResponse(order, func(productID int64) string {
		return productNames[productID]
	})
	return resp, nil
}

// GetAllOrders maps every stored order to its response view.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.OrderResponse, error) {
	orders, err := s.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *s.toResponse(ctx, &orders[i]))
	}

	return responses, nil
}

// GetOrderByID looks up an order by its internal numeric key. Absence is
// store.ErrNotFound, same signal as the product path.
func (s *OrderService) GetOrderByID(ctx context.Context, id int64) (*models.OrderResponse, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, order), nil
}

func (s *OrderService) toResponse(ctx context.Context, order *models.Order) *models.OrderResponse {
	return buildOrderResponse(order, func(productID int64) string {
		product, err := s.products.GetByID(ctx, productID)
		if err != nil {
			// Historical order items survive product deletion.
			return ""
		}
		return product.Name
	})
}

func buildOrderResponse(order *models.Order, productName func(int64) string) *models.OrderResponse {
	resp := &models.OrderResponse{
		OrderID:      order.OrderID,
		CustomerName: order.CustomerName,
		Email:        order.Email,
		Status:       order.Status,
		OrderDate:    order.OrderDate.Format(models.DateFormat),
		Items:        make([]models.OrderItemResponse, 0, len(order.Items)),
		Total:        decimal.Zero,
	}

	for _, item := range order.Items {
		resp.Items = append(resp.Items, models.OrderItemResponse{
			ProductName: productName(item.ProductID),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
		resp.Total = resp.Total.Add(item.Subtotal)
	}

	return resp
}

func validateOrderRequest(req *models.OrderRequest) error {
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name required", ErrInvalidOrder)
	}
	if req.Email == "" {
		return fmt.Errorf("%w: email required", ErrInvalidOrder)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: at least one item required", ErrInvalidOrder)
	}
	for _, line := range req.Items {
		if line.ProductID <= 0 {
			return fmt.Errorf("%w: invalid product id %d", ErrInvalidOrder, line.ProductID)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive", ErrInvalidOrder)
		}
	}
	return nil
}
