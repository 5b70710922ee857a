package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// StatusPlaced is the only status the service assigns today.
	// Fulfillment transitions are out of scope.
	StatusPlaced = "Placed"
)

// DateFormat is the wire format for order dates (calendar date, no time).
const DateFormat = "2006-01-02"

type Order struct {
	ID           int64       `json:"id" db:"id"`
	OrderID      string      `json:"orderId" db:"order_id"` // external token, unique and immutable
	CustomerName string      `json:"customerName" db:"customer_name"`
	Email        string      `json:"email" db:"email"`
	Status       string      `json:"status" db:"status"`
	OrderDate    time.Time   `json:"orderDate" db:"order_date"`
	Items        []OrderItem `json:"items"`
}

type OrderItem struct {
	ID        int64           `json:"id" db:"id"`
	OrderID   int64           `json:"-" db:"order_id"`
	ProductID int64           `json:"productId" db:"product_id"` // weak reference: deleting a product keeps historical items
	Quantity  int             `json:"quantity" db:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice" db:"unit_price"` // price snapshot at order time
	Subtotal  decimal.Decimal `json:"subtotal" db:"subtotal"`
}

// OrderRequest is the inbound payload for placing an order.
type OrderRequest struct {
	CustomerName string             `json:"customerName" binding:"required"`
	Email        string             `json:"email" binding:"required,email"`
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type OrderItemRequest struct {
	ProductID int64 `json:"productId" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// OrderResponse is the outbound view of a placed order.
type OrderResponse struct {
	OrderID      string              `json:"orderId"`
	CustomerName string              `json:"customerName"`
	Email        string              `json:"email"`
	Status       string              `json:"status"`
	OrderDate    string              `json:"orderDate"`
	Items        []OrderItemResponse `json:"items"`
	Total        decimal.Decimal     `json:"total"`
}

type OrderItemResponse struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
