package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/storefront/internal/config"
	"github.com/matthieukhl/storefront/internal/database"
)

var (
	dropFirst bool
	skipData  bool
)

var setupCmd = &cobra.Command{
	Use:   "setup-db",
	Short: "Set up the database schema and sample catalog",
	Long: `Creates the storefront tables (products, orders, order_items)
and populates the catalog with a handful of sample products so the
API is usable right after setup.`,
	RunE: setupDatabase,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing tables before creating")
	setupCmd.Flags().BoolVar(&skipData, "schema-only", false, "Create schema only, skip sample catalog")
}

func setupDatabase(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Drop tables if requested
	if dropFirst {
		fmt.Println("🗑️  Dropping existing tables...")
		if err := db.DropSchema(); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	// Create schema
	fmt.Println("📋 Creating schema...")
	if err := db.SetupSchema(); err != nil {
		return fmt.Errorf("failed to setup schema: %w", err)
	}

	if !skipData {
		fmt.Println("📦 Seeding sample catalog...")
		if err := seedCatalog(db); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	fmt.Println("✅ Database setup complete!")
	return nil
}

func seedCatalog(db *database.DB) error {
	products := []struct {
		name, description, category string
		price                       string
		stock                       int
	}{
		{"Wireless Mouse", "Compact 2.4GHz wireless mouse with silent clicks", "Electronics", "24.99", 120},
		{"Mechanical Keyboard", "Tenkeyless board with hot-swappable switches", "Electronics", "89.90", 45},
		{"Ceramic Mug", "350ml stoneware mug, dishwasher safe", "Home & Kitchen", "9.99", 200},
		{"French Press", "1L borosilicate glass french press", "Home & Kitchen", "32.50", 60},
		{"Cotton T-Shirt", "Heavyweight 220gsm cotton tee", "Apparel", "19.00", 150},
		{"Canvas Tote Bag", "Reinforced handles, fits a 15\" laptop", "Apparel", "14.50", 80},
		{"Desk Lamp", "Dimmable LED lamp with USB-C charging port", "Electronics", "39.99", 70},
		{"Notebook Set", "Pack of 3 dotted A5 notebooks", "Stationery", "12.75", 90},
	}

	for _, p := range products {
		_, err := db.Exec(`
			INSERT INTO products (name, description, price, stock, category)
			VALUES (?, ?, ?, ?, ?)
		`, p.name, p.description, p.price, p.stock, p.category)
		if err != nil {
			return err
		}
	}

	fmt.Printf("   📦 Inserted %d products\n", len(products))
	return nil
}
