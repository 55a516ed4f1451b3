package orders

import (
	"context"

	"serviceflow/internal/domain"
)

// OrderRepository defines the persistence operations the order service needs
type OrderRepository interface {
	CreateWithItems(ctx context.Context, o *domain.ServiceOrder) error
	ReplaceWithItems(ctx context.Context, o *domain.ServiceOrder) error
	GetByID(ctx context.Context, id string) (*domain.ServiceOrder, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ServiceOrder, error)
	DeleteWithItems(ctx context.Context, id string) error
	Stats(ctx context.Context, userID string) (int64, float64, error)
}
