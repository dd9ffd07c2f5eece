package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the buyer identity referenced by orders.
type Customer struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email     string          `gorm:"column:email;not null"`
	FirstName string          `gorm:"column:first_name;not null;default:''"`
	LastName  string          `gorm:"column:last_name;not null;default:''"`
	Groups    []CustomerGroup `gorm:"many2many:customer_group_members"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// CustomerGroup is a named segment a customer can belong to.
// A customer may belong to several groups at once.
type CustomerGroup struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
