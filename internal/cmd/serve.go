package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/matthieukhl/storefront/internal/config"
	"github.com/matthieukhl/storefront/internal/database"
	"github.com/matthieukhl/storefront/internal/genai"
	"github.com/matthieukhl/storefront/internal/server"
	"github.com/matthieukhl/storefront/internal/service"
	"github.com/matthieukhl/storefront/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Storefront API server",
	Long: `Start the Storefront API server which provides:
- REST API for the product catalog and order placement
- Inline product image storage and serving
- AI-generated product descriptions and images`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Storefront Starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("🔌 Connecting to database...")
	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Println("✅ Database connected successfully")

	describer, err := genai.NewDescriber(&cfg.AI)
	if err != nil {
		return fmt.Errorf("failed to create describer: %w", err)
	}
	imager, err := genai.NewImager(&cfg.AI)
	if err != nil {
		return fmt.Errorf("failed to create imager: %w", err)
	}

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	productStore := store.NewProductStore(db)
	products := service.NewProductService(productStore, describer, imager, log)
	orders := service.NewOrderService(productStore, store.NewOrderStore(db), log)

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(db, products, orders, cfg.Server.CORSOrigin, log)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
