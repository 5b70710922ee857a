package genai

import (
	"fmt"

	"github.com/matthieukhl/storefront/internal/config"
	"github.com/matthieukhl/storefront/internal/genai/describe"
	"github.com/matthieukhl/storefront/internal/genai/image"
	"github.com/matthieukhl/storefront/internal/types"
)

// NewDescriber creates a description generator based on configuration
func NewDescriber(cfg *config.AIConfig) (types.Describer, error) {
	switch cfg.Describer.Provider {
	case "openai":
		return describe.NewOpenAIDescriber(cfg.Describer.Model, cfg.Describer.APIKeyEnv, cfg.Describer.APIKey, cfg.Timeout)
	case "anthropic":
		return describe.NewAnthropicDescriber(cfg.Describer.Model, cfg.Describer.APIKeyEnv, cfg.Describer.APIKey, cfg.Timeout)
	case "mock":
		return describe.NewMockDescriber(cfg.Describer.Model), nil
	default:
		return nil, fmt.Errorf("unsupported describer provider: %s", cfg.Describer.Provider)
	}
}

// NewImager creates an image generator based on configuration
func NewImager(cfg *config.AIConfig) (types.Imager, error) {
	switch cfg.Imager.Provider {
	case "openai":
		return image.NewOpenAIImager(cfg.Imager.Model, cfg.Imager.APIKeyEnv, cfg.Imager.APIKey, cfg.Timeout)
	case "mock":
		return image.NewMockImager(cfg.Imager.Model), nil
	default:
		return nil, fmt.Errorf("unsupported imager provider: %s", cfg.Imager.Provider)
	}
}
