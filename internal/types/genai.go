package types

import "context"

// Describer produces marketing copy for a product from its attributes
type Describer interface {
	GenerateDescription(ctx context.Context, name, category string) (string, error)
	Model() string
}

// Imager produces a product image from its attributes
type Imager interface {
	GenerateImage(ctx context.Context, name, category, description string) ([]byte, error)
	Model() string
}
