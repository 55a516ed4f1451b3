package catalog

import (
	"context"
	"errors"
	"math"
	"strings"

	"serviceflow/internal/domain"

	"gorm.io/gorm"
)

// Service manages the global product/price catalog.
type Service struct {
	products ProductRepository
}

func NewService(products ProductRepository) *Service {
	return &Service{products: products}
}

func normalize(req ProductRequest) (*domain.Product, error) {
	if strings.TrimSpace(req.Name) == "" || req.Price < 0 {
		return nil, ErrInvalidInput
	}

	qty := int(math.Round(req.Quantity))
	if qty < 0 {
		return nil, ErrInvalidInput
	}

	unit := domain.ProductUnit(req.Unit)
	if unit != domain.UnitUnits && unit != domain.UnitMeters {
		return nil, ErrInvalidInput
	}

	return &domain.Product{
		Name:     req.Name,
		Price:    req.Price,
		Quantity: qty,
		Unit:     unit,
	}, nil
}

func (s *Service) CreateProduct(ctx context.Context, req ProductRequest) (*domain.Product, error) {
	p, err := normalize(req)
	if err != nil {
		return nil, err
	}

	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *Service) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*domain.Product, error) {
	p, err := normalize(req)
	if err != nil {
		return nil, err
	}

	updated, err := s.products.Update(ctx, id, map[string]any{
		"name":     p.Name,
		"price":    p.Price,
		"quantity": p.Quantity,
		"unit":     string(p.Unit),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
