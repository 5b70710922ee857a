package models

import "github.com/shopspring/decimal"

type Product struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Stock       int             `json:"stock" db:"stock"`
	Category    string          `json:"category" db:"category"`
	ImageName   string          `json:"imageName" db:"image_name"`
	ImageType   string          `json:"imageType" db:"image_type"`
	ImageData   []byte          `json:"-" db:"image_data"` // served via /api/product/:id/image, not inlined in JSON
}

// HasImage reports whether image bytes were stored for the product.
func (p *Product) HasImage() bool {
	return len(p.ImageData) > 0
}
