package products

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mercura/storefront-analytics/internal/analytics"
	"github.com/mercura/storefront-analytics/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a products repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListLowStockLevels(ctx context.Context, maxStocked int) ([]analytics.InventoryLevel, error) {
	var rows []models.InventoryLevel
	err := r.db.WithContext(ctx).
		Where("stocked_quantity <= ?", maxStocked).
		Order("stocked_quantity ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	levels := make([]analytics.InventoryLevel, 0, len(rows))
	for _, row := range rows {
		levels = append(levels, analytics.InventoryLevel{
			InventoryItemID: row.InventoryItemID,
			StockedQuantity: row.StockedQuantity,
		})
	}
	return levels, nil
}

func (r *repository) ListInventoryItems(ctx context.Context, ids []uuid.UUID) ([]analytics.InventoryItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []models.InventoryItem
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]analytics.InventoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, analytics.InventoryItem{ID: row.ID, SKU: row.SKU})
	}
	return items, nil
}

func (r *repository) ListVariantsBySKU(ctx context.Context, skus []string) ([]analytics.ProductVariant, error) {
	if len(skus) == 0 {
		return nil, nil
	}

	var rows []models.ProductVariant
	if err := r.db.WithContext(ctx).Where("sku IN ?", skus).Find(&rows).Error; err != nil {
		return nil, err
	}

	variants := make([]analytics.ProductVariant, 0, len(rows))
	for _, row := range rows {
		variants = append(variants, analytics.ProductVariant{
			ID:        row.ID,
			ProductID: row.ProductID,
			SKU:       row.SKU,
			Title:     row.Title,
		})
	}
	return variants, nil
}
