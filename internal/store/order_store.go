package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/matthieukhl/storefront/internal/database"
	"github.com/matthieukhl/storefront/internal/models"
)

type orderStore struct {
	db *database.DB
}

// NewOrderStore creates an order store backed by the given database
func NewOrderStore(db *database.DB) OrderStore {
	return &orderStore{db: db}
}

// Create persists the order and its items as one transaction. Each item's
// product stock is decremented with a conditional update so that concurrent
// orders can never drive stock below zero; when the condition fails the
// whole transaction rolls back with ErrInsufficientStock.
func (s *orderStore) Create(ctx context.Context, o *models.Order) error {
	if len(o.Items) == 0 {
		return fmt.Errorf("%w: order requires at least one item", ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, item := range o.Items {
		result, err := tx.ExecContext(ctx,
			"UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?",
			item.Quantity, item.ProductID, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to decrement stock for product %d: %w", item.ProductID, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("product %d: %w", item.ProductID, ErrInsufficientStock)
		}
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO orders (order_id, customer_name, email, status, order_date)
		VALUES (?, ?, ?, ?, ?)`,
		o.OrderID, o.CustomerName, o.Email, o.Status, o.OrderDate.Format(models.DateFormat),
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	orderID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted order id: %w", err)
	}
	o.ID = orderID

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = orderID

		result, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price, subtotal)
			VALUES (?, ?, ?, ?, ?)`,
			item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}

		itemID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read inserted item id: %w", err)
		}
		item.ID = itemID
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

func (s *orderStore) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	err := s.db.QueryRowContext(ctx, `
		SELECT id, order_id, customer_name, email, status, order_date
		FROM orders WHERE id = ?`, id,
	).Scan(&o.ID, &o.OrderID, &o.CustomerName, &o.Email, &o.Status, &o.OrderDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}

	items, err := s.loadItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (s *orderStore) GetAll(ctx context.Context) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, order_id, customer_name, email, status, order_date
		FROM orders`)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.OrderID, &o.CustomerName, &o.Email, &o.Status, &o.OrderDate); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	for i := range orders {
		items, err := s.loadItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (s *orderStore) loadItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, quantity, unit_price, subtotal
		FROM order_items WHERE order_id = ?`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for order %d: %w", orderID, err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.Quantity, &item.UnitPrice, &item.Subtotal)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order items: %w", err)
	}

	return items, nil
}

// Compile-time interface check
var _ OrderStore = (*orderStore)(nil)
