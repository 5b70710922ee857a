package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront - e-commerce backend",
	Long: `Storefront is a small e-commerce backend serving a product catalog
and order placement over a REST API.

It can generate product descriptions and images through a configured
AI provider, and ships commands to set up the database schema and
verify connectivity.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
