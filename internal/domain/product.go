package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductUnit string

const (
	UnitUnits  ProductUnit = "UNITS"
	UnitMeters ProductUnit = "METERS"
)

// Product belongs to the global price catalog, it is not scoped to a user.
type Product struct {
	ID        string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string      `json:"name" gorm:"not null" validate:"required"`
	Price     float64     `json:"price" gorm:"type:decimal(12,2);not null" validate:"gte=0"`
	Quantity  int         `json:"quantity" gorm:"not null;default:0" validate:"gte=0"`
	Unit      ProductUnit `json:"unit" gorm:"type:varchar(10);not null" validate:"required,oneof=UNITS METERS"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
