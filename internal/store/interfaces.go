package store

import (
	"context"

	"github.com/matthieukhl/storefront/internal/models"
)

// ProductStore persists the product catalog.
type ProductStore interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, keyword string) ([]models.Product, error)
}

// OrderStore persists orders and their items. Create decrements product
// stock and inserts the order with its items in a single transaction.
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
}
