package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceOrder is the aggregate root for a work order. Client is a
// free-text snapshot of the client's display name at creation time,
// deliberately not a foreign key into the client registry.
type ServiceOrder struct {
	ID          string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string        `json:"userId" gorm:"index;type:varchar(36);not null"`
	Client      string        `json:"client" gorm:"not null" validate:"required"`
	Date        time.Time     `json:"date" gorm:"not null"`
	Fleet       string        `json:"fleet" gorm:"not null" validate:"required"`
	Farm        string        `json:"farm,omitempty"`
	Description string        `json:"description,omitempty" gorm:"type:text"`
	Total       float64       `json:"total" gorm:"type:decimal(12,2);not null"`
	Items       []ServiceItem `json:"items" gorm:"foreignKey:OrderID"`
	User        *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func (o *ServiceOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// ServiceItem total always equals quantity × unit price, recomputed
// server-side on every write.
type ServiceItem struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID     string  `json:"orderId" gorm:"index;type:varchar(36);not null"`
	Description string  `json:"description" gorm:"not null"`
	Quantity    int     `json:"quantity" gorm:"not null"`
	UnitPrice   float64 `json:"unitPrice" gorm:"type:decimal(12,2);not null"`
	Total       float64 `json:"total" gorm:"type:decimal(12,2);not null"`
}

func (it *ServiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	return nil
}
