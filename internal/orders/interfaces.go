package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mercura/storefront-analytics/internal/analytics"
	"github.com/mercura/storefront-analytics/pkg/enums"
)

// Repository reads order data for the dashboard aggregators.
type Repository interface {
	// ListOrdersInRange returns orders created in [start, end), oldest
	// first, with line items preloaded. Excluded statuses are filtered
	// out in the query.
	ListOrdersInRange(ctx context.Context, start, end time.Time, excludedStatuses []enums.OrderStatus) ([]analytics.Order, error)
	// ListOrdersByCustomer returns the full order history of the given
	// customers, regardless of status or date.
	ListOrdersByCustomer(ctx context.Context, customerIDs []uuid.UUID) ([]analytics.Order, error)
}
