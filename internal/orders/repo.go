package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mercura/storefront-analytics/internal/analytics"
	"github.com/mercura/storefront-analytics/pkg/db/models"
	"github.com/mercura/storefront-analytics/pkg/enums"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListOrdersInRange(ctx context.Context, start, end time.Time, excludedStatuses []enums.OrderStatus) ([]analytics.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("Items").
		Where("created_at >= ? AND created_at < ?", start, end)
	if len(excludedStatuses) > 0 {
		query = query.Where("status NOT IN ?", excludedStatuses)
	}

	var rows []models.Order
	if err := query.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapOrders(rows), nil
}

func (r *repository) ListOrdersByCustomer(ctx context.Context, customerIDs []uuid.UUID) ([]analytics.Order, error) {
	if len(customerIDs) == 0 {
		return nil, nil
	}

	var rows []models.Order
	err := r.db.WithContext(ctx).
		Where("customer_id IN ?", customerIDs).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapOrders(rows), nil
}

func mapOrders(rows []models.Order) []analytics.Order {
	orders := make([]analytics.Order, 0, len(rows))
	for _, row := range rows {
		region := ""
		if row.RegionName != nil {
			region = *row.RegionName
		}
		items := make([]analytics.LineItem, 0, len(row.Items))
		for _, item := range row.Items {
			items = append(items, analytics.LineItem{
				VariantID:    item.VariantID,
				ProductTitle: item.ProductTitle,
				VariantTitle: item.VariantTitle,
				Quantity:     item.Quantity,
			})
		}
		orders = append(orders, analytics.Order{
			ID:           row.ID,
			Status:       row.Status,
			CurrencyCode: row.CurrencyCode,
			TotalCents:   row.TotalCents,
			RegionName:   region,
			CustomerID:   row.CustomerID,
			Items:        items,
			CreatedAt:    row.CreatedAt,
		})
	}
	return orders
}
