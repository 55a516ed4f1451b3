package repository

import (
	"context"
	"strings"

	"serviceflow/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Preload("CompanyInfo").
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).Preload("CompanyInfo").First(&u, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0)
	tx := r.db.WithContext(ctx).
		Preload("CompanyInfo").
		Order("created_at DESC").
		Find(&users)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return users, nil
}

// DeleteCascade removes a user and everything it owns. Dependency order:
// service items, service orders, company info, clients, then the user,
// all inside one transaction so a failure leaves no partial state.
func (r *UserRepository) DeleteCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u domain.User
		if err := tx.First(&u, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Where(
			"order_id IN (?)",
			tx.Model(&domain.ServiceOrder{}).Select("id").Where("user_id = ?", id),
		).Delete(&domain.ServiceItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&domain.ServiceOrder{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&domain.CompanyInfo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&domain.Client{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.User{}, "id = ?", id).Error
	})
}
