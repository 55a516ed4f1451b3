package repository

import (
	"context"

	"serviceflow/internal/domain"

	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, ci *domain.CompanyInfo) error {
	return r.db.WithContext(ctx).Create(ci).Error
}

func (r *CompanyRepository) GetByUserID(ctx context.Context, userID string) (*domain.CompanyInfo, error) {
	var ci domain.CompanyInfo
	tx := r.db.WithContext(ctx).First(&ci, "user_id = ?", userID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &ci, nil
}

// UpdateByUserID mutates the profile in place, keyed by the owning user.
func (r *CompanyRepository) UpdateByUserID(ctx context.Context, userID string, fields map[string]any) (*domain.CompanyInfo, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.CompanyInfo{}).
		Where("user_id = ?", userID).
		Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByUserID(ctx, userID)
}
