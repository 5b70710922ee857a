package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/matthieukhl/storefront/internal/database"
	"github.com/matthieukhl/storefront/internal/models"
)

type productStore struct {
	db *database.DB
}

// NewProductStore creates a product store backed by the given database
func NewProductStore(db *database.DB) ProductStore {
	return &productStore{db: db}
}

const productColumns = `id, name, description, price, stock, category,
		COALESCE(image_name, ''), COALESCE(image_type, ''), image_data`

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.Category,
		&p.ImageName,
		&p.ImageType,
		&p.ImageData,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *productStore) GetAll(ctx context.Context) ([]models.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products", productColumns)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

func (s *productStore) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE id = ?", productColumns)

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}

	return p, nil
}

func (s *productStore) Create(ctx context.Context, p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: product name required", ErrInvalidInput)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: product stock cannot be negative", ErrInvalidInput)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO products (name, description, price, stock, category, image_name, image_type, image_data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Description, p.Price, p.Stock, p.Category,
		p.ImageName, p.ImageType, p.ImageData,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted product id: %w", err)
	}
	p.ID = id

	return nil
}

// Update performs a full-field replace of the row with the same id.
func (s *productStore) Update(ctx context.Context, p *models.Product) error {
	if p.ID <= 0 {
		return fmt.Errorf("%w: product id required", ErrInvalidInput)
	}
	if p.Name == "" {
		return fmt.Errorf("%w: product name required", ErrInvalidInput)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE products
		SET name = ?, description = ?, price = ?, stock = ?, category = ?,
		    image_name = ?, image_type = ?, image_data = ?
		WHERE id = ?`,
		p.Name, p.Description, p.Price, p.Stock, p.Category,
		p.ImageName, p.ImageType, p.ImageData, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %d: %w", p.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		// Full replace can legitimately write identical values; confirm
		// the row exists before reporting not found.
		if _, err := s.GetByID(ctx, p.ID); err != nil {
			return err
		}
	}

	return nil
}

func (s *productStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Search matches the keyword as a case-insensitive substring of name,
// description or category.
func (s *productStore) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"
	query := fmt.Sprintf(`SELECT %s FROM products
		WHERE LOWER(name) LIKE ?
		   OR LOWER(description) LIKE ?
		   OR LOWER(category) LIKE ?`, productColumns)

	rows, err := s.db.QueryContext(ctx, query, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// Compile-time interface check
var _ ProductStore = (*productStore)(nil)
