package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/mercura/storefront-analytics/pkg/enums"
)

// Order is the storefront order snapshot the dashboard aggregates over.
// Totals are integer minor units in the order's own currency.
type Order struct {
	ID           uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	DisplayID    int64             `gorm:"column:display_id;not null"`
	Status       enums.OrderStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	CurrencyCode string            `gorm:"column:currency_code;not null;default:'EUR'"`
	TotalCents   int64             `gorm:"column:total_cents;not null"`
	RegionName   *string           `gorm:"column:region_name"`
	CustomerID   *uuid.UUID        `gorm:"column:customer_id;type:uuid"`
	Items        []OrderLineItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
