package image

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"

	"github.com/matthieukhl/storefront/internal/types"
)

// MockImager renders a solid-color placeholder PNG derived from the product
// name, so tests and offline development get stable bytes per product.
type MockImager struct {
	model string
	size  int
}

func NewMockImager(model string) *MockImager {
	return &MockImager{model: model, size: 256}
}

func (g *MockImager) GenerateImage(ctx context.Context, name, category, description string) ([]byte, error) {
	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()

	fill := color.RGBA{
		R: uint8(sum >> 16),
		G: uint8(sum >> 8),
		B: uint8(sum),
		A: 255,
	}

	img := image.NewRGBA(image.Rect(0, 0, g.size, g.size))
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			img.SetRGBA(x, y, fill)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode placeholder image: %w", err)
	}

	return buf.Bytes(), nil
}

func (g *MockImager) Model() string {
	return g.model + "-mock"
}

// Compile-time interface check
var _ types.Imager = (*MockImager)(nil)
