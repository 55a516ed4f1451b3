package admin

import (
	"context"

	"serviceflow/internal/domain"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	DeleteCascade(ctx context.Context, id string) error
}
