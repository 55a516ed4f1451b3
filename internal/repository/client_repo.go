package repository

import (
	"context"

	"serviceflow/internal/domain"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, cl *domain.Client) error {
	return r.db.WithContext(ctx).Create(cl).Error
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	var cl domain.Client
	tx := r.db.WithContext(ctx).First(&cl, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &cl, nil
}

func (r *ClientRepository) ListByUser(ctx context.Context, userID string) ([]domain.Client, error) {
	clients := make([]domain.Client, 0)
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&clients)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return clients, nil
}

func (r *ClientRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Client, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Client{}).
		Where("id = ?", id).
		Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Client{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
