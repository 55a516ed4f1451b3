package repository

import (
	"context"

	"serviceflow/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateWithItems persists the order and its items in one transaction;
// a partial write (order without items) is never observable.
func (r *OrderRepository) CreateWithItems(ctx context.Context, o *domain.ServiceOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
}

// ReplaceWithItems updates the order row and swaps the full item set:
// delete-all-then-insert, not a diff, so stale items cannot survive.
func (r *OrderRepository) ReplaceWithItems(ctx context.Context, o *domain.ServiceOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.ServiceOrder{}).
			Where("id = ?", o.ID).
			Updates(map[string]any{
				"client":      o.Client,
				"date":        o.Date,
				"fleet":       o.Fleet,
				"farm":        o.Farm,
				"description": o.Description,
				"total":       o.Total,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("order_id = ?", o.ID).Delete(&domain.ServiceItem{}).Error; err != nil {
			return err
		}

		for i := range o.Items {
			o.Items[i].ID = ""
			o.Items[i].OrderID = o.ID
		}
		if len(o.Items) == 0 {
			return nil
		}
		return tx.Create(&o.Items).Error
	})
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.ServiceOrder, error) {
	var o domain.ServiceOrder
	tx := r.db.WithContext(ctx).
		Preload("Items").
		Preload("User").
		Preload("User.CompanyInfo").
		First(&o, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &o, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]domain.ServiceOrder, error) {
	orders := make([]domain.ServiceOrder, 0)
	tx := r.db.WithContext(ctx).
		Preload("Items").
		Preload("User").
		Preload("User.CompanyInfo").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return orders, nil
}

// DeleteWithItems removes dependent items before the order itself.
func (r *OrderRepository) DeleteWithItems(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&domain.ServiceItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.ServiceOrder{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *OrderRepository) CountItemsByOrder(ctx context.Context, orderID string) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).
		Model(&domain.ServiceItem{}).
		Where("order_id = ?", orderID).
		Count(&count)
	return count, tx.Error
}

// Stats returns the order count and the revenue sum for one user.
// Revenue is zero, never NULL, when the user owns no orders.
func (r *OrderRepository) Stats(ctx context.Context, userID string) (int64, float64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.ServiceOrder{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, 0, err
	}

	var revenue float64
	if err := r.db.WithContext(ctx).
		Model(&domain.ServiceOrder{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue).Error; err != nil {
		return 0, 0, err
	}

	return count, revenue, nil
}
