package customers

import (
	"context"

	"github.com/google/uuid"

	"github.com/mercura/storefront-analytics/internal/analytics"
)

// Repository resolves customer identities for the customer rollup.
type Repository interface {
	// ListCustomers returns the customers with the given ids, group
	// memberships included.
	ListCustomers(ctx context.Context, ids []uuid.UUID) ([]analytics.Customer, error)
}
