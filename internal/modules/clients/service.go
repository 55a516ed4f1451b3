package clients

import (
	"context"
	"errors"
	"strings"

	"serviceflow/internal/domain"
	"serviceflow/internal/pkg/document"

	"gorm.io/gorm"
)

type Service struct {
	clients ClientRepository
	users   UserChecker
}

func NewService(clients ClientRepository, users UserChecker) *Service {
	return &Service{clients: clients, users: users}
}

func validDocument(clientType domain.ClientType, doc string) bool {
	switch clientType {
	case domain.ClientIndividual:
		return document.IsValidCPF(doc)
	case domain.ClientCompany:
		return document.IsValidCNPJ(doc)
	default:
		return false
	}
}

func (s *Service) CreateClient(ctx context.Context, userID string, req CreateClientRequest) (*domain.Client, error) {
	if userID == "" || strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Document) == "" {
		return nil, ErrInvalidInput
	}

	clientType := domain.ClientType(req.Type)
	if clientType != domain.ClientIndividual && clientType != domain.ClientCompany {
		return nil, ErrInvalidInput
	}

	if !validDocument(clientType, req.Document) {
		return nil, ErrBadDocument
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	cl := &domain.Client{
		UserID:            userID,
		Type:              clientType,
		Name:              req.Name,
		Document:          req.Document,
		Email:             req.Email,
		Phone:             req.Phone,
		Address:           req.Address,
		City:              req.City,
		State:             req.State,
		CompanyName:       req.CompanyName,
		TradingName:       req.TradingName,
		StateRegistration: req.StateRegistration,
	}

	if err := s.clients.Create(ctx, cl); err != nil {
		return nil, err
	}
	return cl, nil
}

// ListClients is scoped to one user; an empty user id yields an empty
// slice rather than an error.
func (s *Service) ListClients(ctx context.Context, userID string) ([]domain.Client, error) {
	if userID == "" {
		return []domain.Client{}, nil
	}
	return s.clients.ListByUser(ctx, userID)
}

func (s *Service) UpdateClient(ctx context.Context, id, callerID string, admin bool, req UpdateClientRequest) (*domain.Client, error) {
	existing, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if existing.UserID != callerID && !admin {
		return nil, ErrForbidden
	}

	clientType := existing.Type
	if req.Type != "" {
		clientType = domain.ClientType(req.Type)
		if clientType != domain.ClientIndividual && clientType != domain.ClientCompany {
			return nil, ErrInvalidInput
		}
	}

	doc := existing.Document
	if req.Document != "" {
		doc = req.Document
	}
	if !validDocument(clientType, doc) {
		return nil, ErrBadDocument
	}

	fields := map[string]any{
		"type":     string(clientType),
		"document": doc,
	}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	fields["email"] = req.Email
	fields["phone"] = req.Phone
	fields["address"] = req.Address
	fields["city"] = req.City
	fields["state"] = req.State
	fields["company_name"] = req.CompanyName
	fields["trading_name"] = req.TradingName
	fields["state_registration"] = req.StateRegistration

	updated, err := s.clients.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteClient(ctx context.Context, id, callerID string, admin bool) error {
	existing, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if existing.UserID != callerID && !admin {
		return ErrForbidden
	}

	if err := s.clients.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
