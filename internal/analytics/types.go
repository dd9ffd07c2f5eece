// Package analytics computes the admin-dashboard aggregates: sales and
// order-count time series, region and status breakdowns, product and
// inventory rollups, and customer classification.
package analytics

import (
	"time"

	"github.com/google/uuid"

	"github.com/mercura/storefront-analytics/pkg/enums"
)

// Order is the flat order record the aggregators consume. TotalCents is
// the order total in minor units of CurrencyCode.
type Order struct {
	ID           uuid.UUID
	Status       enums.OrderStatus
	CurrencyCode string
	TotalCents   int64
	RegionName   string
	CustomerID   *uuid.UUID
	Items        []LineItem
	CreatedAt    time.Time
}

// LineItem is one purchased variant on an order.
type LineItem struct {
	VariantID    uuid.UUID
	ProductTitle string
	VariantTitle string
	Quantity     int
}

// Customer carries the identity and group memberships needed by the
// customer rollup.
type Customer struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Groups    []string
	CreatedAt time.Time
}

// InventoryLevel is a stocked quantity for one inventory item.
type InventoryLevel struct {
	InventoryItemID uuid.UUID
	StockedQuantity int
}

// InventoryItem links an inventory record to a variant SKU.
type InventoryItem struct {
	ID  uuid.UUID
	SKU string
}

// ProductVariant is the sellable unit inventory is matched against.
type ProductVariant struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	SKU       string
	Title     string
}

// SeriesPoint is one bucket of a monetary time series.
type SeriesPoint struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// CountPoint is one bucket of a count time series.
type CountPoint struct {
	Key   string `json:"key"`
	Value int    `json:"value"`
}

// RegionSales ranks a region by its sales in major units.
type RegionSales struct {
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

// StatusCount is the number of orders in one status.
type StatusCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// OrderAnalytics is the orders endpoint payload.
type OrderAnalytics struct {
	TotalOrders       int           `json:"total_orders"`
	PrevOrdersPercent float64       `json:"prev_orders_percent"`
	Regions           []RegionSales `json:"regions"`
	TotalSales        float64       `json:"total_sales"`
	PrevSalesPercent  float64       `json:"prev_sales_percent"`
	Statuses          []StatusCount `json:"statuses"`
	OrderSales        []SeriesPoint `json:"order_sales"`
	OrderCount        []CountPoint  `json:"order_count"`
	CurrencyCode      string        `json:"currency_code"`
}

// LowStockVariant is a variant whose stocked quantity sits at or below
// the configured threshold.
type LowStockVariant struct {
	SKU               string `json:"sku"`
	VariantName       string `json:"variantName"`
	VariantID         string `json:"variantId"`
	ProductID         string `json:"productId"`
	InventoryQuantity int    `json:"inventoryQuantity"`
}

// VariantQuantity is a variant ranked by quantity sold in the window.
type VariantQuantity struct {
	VariantID string `json:"variantId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// ProductAnalytics is the products endpoint payload.
type ProductAnalytics struct {
	LowStockVariants    []LowStockVariant `json:"lowStockVariants"`
	VariantQuantitySold []VariantQuantity `json:"variantQuantitySold"`
}

// CustomerSales is one customer's normalized sales within the window.
type CustomerSales struct {
	CustomerID string  `json:"customer_id"`
	Name       string  `json:"name"`
	Sales      float64 `json:"sales"`
}

// GroupSales is a customer group's summed sales within the window.
type GroupSales struct {
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

// CustomerAnalytics is the customers endpoint payload.
type CustomerAnalytics struct {
	TotalCustomers     int             `json:"total_customers"`
	NewCustomers       int             `json:"new_customers"`
	ReturningCustomers int             `json:"returning_customers"`
	CustomerCount      int             `json:"customer_count"`
	CustomerGroups     []GroupSales    `json:"customer_group"`
	CustomerSales      []CustomerSales `json:"customer_sales"`
	CurrencyCode       string          `json:"currency_code"`
}
