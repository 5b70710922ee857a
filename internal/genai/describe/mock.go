package describe

import (
	"context"
	"fmt"
	"strings"

	"github.com/matthieukhl/storefront/internal/types"
)

// MockDescriber returns deterministic copy for tests and offline development.
type MockDescriber struct {
	model string
}

func NewMockDescriber(model string) *MockDescriber {
	return &MockDescriber{model: model}
}

func (g *MockDescriber) GenerateDescription(ctx context.Context, name, category string) (string, error) {
	category = strings.ToLower(category)

	switch {
	case strings.Contains(category, "electronic"):
		return fmt.Sprintf("The %s delivers reliable everyday performance with a compact design. A solid pick for anyone upgrading their setup.", name), nil
	case strings.Contains(category, "kitchen"), strings.Contains(category, "home"):
		return fmt.Sprintf("Bring a touch of comfort home with the %s. Built to last and easy to care for, it fits right into your daily routine.", name), nil
	case strings.Contains(category, "cloth"), strings.Contains(category, "apparel"):
		return fmt.Sprintf("The %s combines comfort with a clean, versatile look. An easy match for any wardrobe.", name), nil
	default:
		return fmt.Sprintf("The %s is a dependable choice in our %s range, made with quality materials and backed by our standard warranty.", name, category), nil
	}
}

func (g *MockDescriber) Model() string {
	return g.model + "-mock"
}

// Compile-time interface check
var _ types.Describer = (*MockDescriber)(nil)
