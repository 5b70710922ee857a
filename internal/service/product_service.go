package service

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/matthieukhl/storefront/internal/models"
	"github.com/matthieukhl/storefront/internal/store"
	"github.com/matthieukhl/storefront/internal/types"
)

// ImageUpload carries an uploaded product image before it is read into the row.
type ImageUpload struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

type ProductService struct {
	products  store.ProductStore
	describer types.Describer
	imager    types.Imager
	log       zerolog.Logger
}

// NewProductService creates the catalog service
func NewProductService(products store.ProductStore, describer types.Describer, imager types.Imager, log zerolog.Logger) *ProductService {
	return &ProductService{
		products:  products,
		describer: describer,
		imager:    imager,
		log:       log.With().Str("component", "product_service").Logger(),
	}
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.GetAll(ctx)
}

// GetProductByID returns the product or store.ErrNotFound; there is no
// sentinel id convention anywhere in the service layer.
func (s *ProductService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	return s.products.GetByID(ctx, id)
}

// SaveProduct creates the product when p.ID is zero, otherwise replaces
// every field of the existing row with the same id. A provided image is
// read fully into memory and stored inline.
func (s *ProductService) SaveProduct(ctx context.Context, p *models.Product, image *ImageUpload) (*models.Product, error) {
	if image != nil {
		data, err := io.ReadAll(image.Reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read image: %w", err)
		}
		p.ImageName = image.Name
		p.ImageType = image.ContentType
		p.ImageData = data
	}

	if p.ID == 0 {
		if err := s.products.Create(ctx, p); err != nil {
			return nil, err
		}
		s.log.Info().Int64("product_id", p.ID).Str("name", p.Name).Msg("product created")
		return p, nil
	}

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info().Int64("product_id", p.ID).Str("name", p.Name).Msg("product updated")
	return p, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

// SearchProducts matches the keyword case-insensitively against name,
// description and category. No match yields an empty slice, never an error.
func (s *ProductService) SearchProducts(ctx context.Context, keyword string) ([]models.Product, error) {
	return s.products.Search(ctx, keyword)
}

func (s *ProductService) GenerateDescription(ctx context.Context, name, category string) (string, error) {
	text, err := s.describer.GenerateDescription(ctx, name, category)
	if err != nil {
		return "", fmt.Errorf("description generation failed: %w", err)
	}
	return text, nil
}

func (s *ProductService) GenerateImage(ctx context.Context, name, category, description string) ([]byte, error) {
	data, err := s.imager.GenerateImage(ctx, name, category, description)
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}
	return data, nil
}
