package customers

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

// NewRepository builds a customers repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListCustomers(ctx context.Context, ids []uuid.UUID) ([]analytics.Customer, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []models.Customer
	err := r.db.WithContext(ctx).
		Preload("Groups").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	customers := make([]analytics.Customer, 0, len(rows))
	for _, row := range rows {
		groups := make([]string, 0, len(row.Groups))
		for _, group := range row.Groups {
			groups = append(groups, group.Name)
		}
		customers = append(customers, analytics.Customer{
			ID:        row.ID,
			Email:     row.Email,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Groups:    groups,
			CreatedAt: row.CreatedAt,
		})
	}
	return customers, nil
}
