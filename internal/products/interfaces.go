package products

import (
	"context"

	"github.com/google/uuid"

	"github.com/mercura/storefront-analytics/internal/analytics"
)

// Repository reads variant and inventory data for the product rollup.
type Repository interface {
	// ListLowStockLevels returns inventory levels stocked at or below
	// maxStocked.
	ListLowStockLevels(ctx context.Context, maxStocked int) ([]analytics.InventoryLevel, error)
	ListInventoryItems(ctx context.Context, ids []uuid.UUID) ([]analytics.InventoryItem, error)
	ListVariantsBySKU(ctx context.Context, skus []string) ([]analytics.ProductVariant, error)
}
