package products

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mercura/storefront-analytics/pkg/db/models"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps the in-memory database alive and shared
	sqlDB.SetMaxOpenConns(1)

	variants := `
CREATE TABLE IF NOT EXISTS product_variants (
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  sku TEXT NOT NULL,
  title TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	items := `
CREATE TABLE IF NOT EXISTS inventory_items (
  id TEXT PRIMARY KEY,
  sku TEXT NOT NULL,
  created_at DATETIME
);`
	levels := `
CREATE TABLE IF NOT EXISTS inventory_levels (
  id TEXT PRIMARY KEY,
  inventory_item_id TEXT NOT NULL,
  location_id TEXT,
  stocked_quantity INTEGER NOT NULL DEFAULT 0,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(variants).Error)
	require.NoError(t, db.Exec(items).Error)
	require.NoError(t, db.Exec(levels).Error)
	return db
}

func createStock(t *testing.T, db *gorm.DB, sku string, stocked int) (uuid.UUID, *models.ProductVariant) {
	t.Helper()

	variant := &models.ProductVariant{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		SKU:       sku,
		Title:     sku + " variant",
	}
	require.NoError(t, db.Create(variant).Error)

	item := &models.InventoryItem{ID: uuid.New(), SKU: sku}
	require.NoError(t, db.Create(item).Error)

	level := &models.InventoryLevel{
		ID:              uuid.New(),
		InventoryItemID: item.ID,
		StockedQuantity: stocked,
	}
	require.NoError(t, db.Create(level).Error)
	return item.ID, variant
}

func TestListLowStockLevels(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	lowItem, _ := createStock(t, db, "SHIRT-M", 2)
	edgeItem, _ := createStock(t, db, "SHIRT-L", 5)
	createStock(t, db, "SHIRT-XL", 50)

	got, err := repo.ListLowStockLevels(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// ascending by stocked quantity, threshold inclusive
	assert.Equal(t, lowItem, got[0].InventoryItemID)
	assert.Equal(t, 2, got[0].StockedQuantity)
	assert.Equal(t, edgeItem, got[1].InventoryItemID)
	assert.Equal(t, 5, got[1].StockedQuantity)
}

func TestListInventoryItems(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	itemID, _ := createStock(t, db, "MUG-B", 1)
	createStock(t, db, "MUG-W", 1)

	got, err := repo.ListInventoryItems(ctx, []uuid.UUID{itemID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "MUG-B", got[0].SKU)

	empty, err := repo.ListInventoryItems(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestListVariantsBySKU(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, variant := createStock(t, db, "POSTER-A2", 3)
	createStock(t, db, "POSTER-A3", 3)

	got, err := repo.ListVariantsBySKU(ctx, []string{"POSTER-A2"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, variant.ID, got[0].ID)
	assert.Equal(t, variant.ProductID, got[0].ProductID)
	assert.Equal(t, "POSTER-A2 variant", got[0].Title)

	empty, err := repo.ListVariantsBySKU(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
