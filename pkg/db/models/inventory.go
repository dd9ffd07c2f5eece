package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem is the stock-keeping record behind a variant SKU.
type InventoryItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SKU       string    `gorm:"column:sku;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// InventoryLevel is the stocked quantity of an inventory item at a location.
type InventoryLevel struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	InventoryItemID uuid.UUID  `gorm:"column:inventory_item_id;type:uuid;not null"`
	LocationID      *uuid.UUID `gorm:"column:location_id;type:uuid"`
	StockedQuantity int        `gorm:"column:stocked_quantity;not null;default:0"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
