package clients

import (
	"context"

	"serviceflow/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, cl *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Client, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}

type UserChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}
