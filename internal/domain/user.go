package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

type User struct {
	ID           string       `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email        string       `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	PasswordHash string       `json:"-" gorm:"not null"`
	Role         UserRole     `json:"role" gorm:"type:varchar(10);not null;default:'USER'"`
	CompanyInfo  *CompanyInfo `json:"companyInfo,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// CompanyInfo is the shop profile printed on service orders.
// One-to-one with User; created at seed time, mutated in place.
type CompanyInfo struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"uniqueIndex;type:varchar(36);not null"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj" gorm:"column:cnpj"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ci *CompanyInfo) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == "" {
		ci.ID = uuid.NewString()
	}
	return nil
}
