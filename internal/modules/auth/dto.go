package auth

import (
	"time"

	"serviceflow/internal/domain"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserProfile is the public projection of a user: never carries the
// password hash.
type UserProfile struct {
	ID          string              `json:"id"`
	Email       string              `json:"email"`
	Role        domain.UserRole     `json:"role"`
	CompanyInfo *domain.CompanyInfo `json:"companyInfo,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}

func NewUserProfile(u *domain.User) UserProfile {
	return UserProfile{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		CompanyInfo: u.CompanyInfo,
		CreatedAt:   u.CreatedAt,
	}
}
