package catalog

import (
	"context"

	"serviceflow/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
