package company

import (
	"context"
	"errors"

	"serviceflow/internal/domain"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.CompanyInfo, error)
	UpdateByUserID(ctx context.Context, userID string, fields map[string]any) (*domain.CompanyInfo, error)
}

type Service struct {
	companies CompanyRepository
}

func NewService(companies CompanyRepository) *Service {
	return &Service{companies: companies}
}

func (s *Service) Get(ctx context.Context, userID string) (*domain.CompanyInfo, error) {
	ci, err := s.companies.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ci, nil
}

// Update mutates the profile in place; there is no create path here, the
// profile row is made at user-initialization time.
func (s *Service) Update(ctx context.Context, userID string, req UpdateCompanyRequest) (*domain.CompanyInfo, error) {
	fields := map[string]any{
		"name":    req.Name,
		"cnpj":    req.CNPJ,
		"address": req.Address,
		"phone":   req.Phone,
		"email":   req.Email,
	}

	ci, err := s.companies.UpdateByUserID(ctx, userID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ci, nil
}
