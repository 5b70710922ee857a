package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/storefront/internal/config"
	"github.com/matthieukhl/storefront/internal/genai"
)

var testAICmd = &cobra.Command{
	Use:   "test-ai",
	Short: "Test AI provider connections",
	Long: `Test connections to the configured AI providers (describer and imager).
This helps verify API keys and connectivity before serving generation
endpoints to clients.`,
	RunE: testAIProviders,
}

func init() {
	rootCmd.AddCommand(testAICmd)
}

func testAIProviders(cmd *cobra.Command, args []string) error {
	fmt.Println("🧪 Testing AI provider connections...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Test describer
	fmt.Printf("✍️  Testing describer (%s/%s)...\n", cfg.AI.Describer.Provider, cfg.AI.Describer.Model)
	describer, err := genai.NewDescriber(&cfg.AI)
	if err != nil {
		return fmt.Errorf("failed to create describer: %w", err)
	}

	description, err := describer.GenerateDescription(ctx, "Ceramic Mug", "Home & Kitchen")
	if err != nil {
		return fmt.Errorf("failed to generate description: %w", err)
	}
	fmt.Printf("   ✅ Generated description: %s\n", description)

	// Test imager
	fmt.Printf("🎨 Testing imager (%s/%s)...\n", cfg.AI.Imager.Provider, cfg.AI.Imager.Model)
	imager, err := genai.NewImager(&cfg.AI)
	if err != nil {
		return fmt.Errorf("failed to create imager: %w", err)
	}

	imageData, err := imager.GenerateImage(ctx, "Ceramic Mug", "Home & Kitchen", description)
	if err != nil {
		return fmt.Errorf("failed to generate image: %w", err)
	}
	fmt.Printf("   ✅ Generated image: %d bytes\n", len(imageData))

	fmt.Println("\n🎉 All AI providers are working correctly!")
	return nil
}
