package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"storefront/internal/model"
	"storefront/internal/seed"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// generateSampleSeed creates sample seed files for local runs.
// catalog.json.gz: the base catalogue
// extras.yaml:     overrides P003's price and adds one historical order
// Load them in that order: SEED_FILES=data/seed/catalog.json.gz,data/seed/extras.yaml
func main() {
	dataDir := "data/seed"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	products := []model.Product{
		{ID: "P001", Name: "Wireless Mouse", Description: "Two-button optical mouse", Price: decimal.RequireFromString("19.99"), Inventory: 120, Category: "Electronics"},
		{ID: "P002", Name: "Mechanical Keyboard", Description: "Tenkeyless, brown switches", Price: decimal.RequireFromString("89.00"), Inventory: 15, Category: "Electronics"},
		{ID: "P003", Name: "Coffee Mug", Description: "Stoneware, 350ml", Price: decimal.RequireFromString("12.50"), Inventory: 40, Category: "Kitchen"},
		{ID: "P004", Name: "Desk Lamp", Description: "LED, dimmable", Price: decimal.RequireFromString("34.00"), Inventory: 8, Category: "Home"},
		{ID: "P005", Name: "Notebook", Description: "A5 dotted", Price: decimal.RequireFromString("4.75"), Inventory: 300, Category: "Stationery"},
	}
	for i := range products {
		products[i].CreatedAt = created.Add(time.Duration(i) * 24 * time.Hour)
		products[i].UpdatedAt = products[i].CreatedAt
	}

	catalogPath := filepath.Join(dataDir, "catalog.json.gz")
	if err := writeGzipJSON(catalogPath, seed.Catalog{Products: products}); err != nil {
		log.Fatalf("Failed to create %s: %v", catalogPath, err)
	}
	fmt.Printf("Created %s with %d products\n", catalogPath, len(products))

	extras := map[string]interface{}{
		"products": []map[string]interface{}{
			{
				"id":          "P003",
				"name":        "Coffee Mug",
				"description": "Stoneware, 350ml",
				"price":       "11.00",
				"inventory":   40,
				"category":    "Kitchen",
				"createdAt":   products[2].CreatedAt.Format(time.RFC3339),
			},
		},
		"orders": []map[string]interface{}{
			{
				"id":            "seed-order-1",
				"status":        "completed",
				"customerName":  "Sample Customer",
				"customerEmail": "customer@example.com",
				"totalAmount":   "31.59",
				"createdAt":     created.Add(48 * time.Hour).Format(time.RFC3339),
				"items": []map[string]interface{}{
					{"productId": "P001", "quantity": 1, "price": "19.99"},
				},
			},
		},
	}

	extrasPath := filepath.Join(dataDir, "extras.yaml")
	if err := writeYAML(extrasPath, extras); err != nil {
		log.Fatalf("Failed to create %s: %v", extrasPath, err)
	}
	fmt.Printf("Created %s\n", extrasPath)

	fmt.Println("\nSample seed files created successfully!")
}

func writeGzipJSON(filePath string, v interface{}) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	enc := json.NewEncoder(gzipWriter)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write catalogue: %w", err)
	}

	return nil
}

func writeYAML(filePath string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return os.WriteFile(filePath, data, 0644)
}
