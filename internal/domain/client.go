package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientType string

const (
	ClientIndividual ClientType = "PF"
	ClientCompany    ClientType = "PJ"
)

type Client struct {
	ID       string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID   string     `json:"userId" gorm:"index;type:varchar(36);not null"`
	Type     ClientType `json:"type" gorm:"type:varchar(2);not null" validate:"required,oneof=PF PJ"`
	Name     string     `json:"name" gorm:"not null" validate:"required"`
	Document string     `json:"document" gorm:"not null" validate:"required"`
	Email    string     `json:"email,omitempty"`
	Phone    string     `json:"phone,omitempty"`
	Address  string     `json:"address,omitempty"`
	City     string     `json:"city,omitempty"`
	State    string     `json:"state,omitempty"`

	// PJ only
	CompanyName       string `json:"companyName,omitempty"`
	TradingName       string `json:"tradingName,omitempty"`
	StateRegistration string `json:"stateRegistration,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (cl *Client) BeforeCreate(tx *gorm.DB) error {
	if cl.ID == "" {
		cl.ID = uuid.NewString()
	}
	return nil
}
