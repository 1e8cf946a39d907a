// cmd/storefront/main.go

// Storefront smoke client: refreshes the catalog from the configured
// service, prints the categorized product list and the current persisted
// cart/favorites state. Useful for checking a deployment end to end
// without a browser.
package main

import (
	"context"
	"log"
	"time"

	"github.com/severyanochka/storefront-backend/internal/config"
	"github.com/severyanochka/storefront-backend/internal/storefront"
	"github.com/severyanochka/storefront-backend/internal/storefront/category"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	app := storefront.New(storefront.Config{
		BaseURL:        cfg.Catalog.BaseURL,
		RequestTimeout: time.Duration(cfg.Catalog.RequestTimeout) * time.Second,
		StateDir:       cfg.State.Dir,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Refresh(ctx); err != nil {
		log.Fatal("Catalog refresh failed:", err)
	}

	classifier := app.Classifier()
	counts := make(map[string]int)
	for _, p := range app.Catalog.Products() {
		counts[classifier.Classify(p.Title)]++
	}

	log.Printf("Catalog: %d products", app.Catalog.Len())
	for name, n := range counts {
		log.Printf("  %-30s %d", name, n)
	}

	all := app.CategoryView(category.AllProducts)
	page, more := all.Page()
	bounds := all.Bounds()
	log.Printf("First page: %d products (more: %v), prices %.2f..%.2f",
		len(page), more, bounds.Min, bounds.Max)

	view := app.Views.Snapshot()
	log.Printf("Cart: %d items, total %.2f", view.CartLineCount(), view.CartTotal())
	for _, line := range view.DetailedCartLines() {
		log.Printf("  %s x%d = %.2f", line.Title, line.Qty, line.LineTotal())
	}
	log.Printf("Favorites: %d", len(app.Selection.FavoriteIDs()))
}
