package orders

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"serviceflow/internal/domain"

	"gorm.io/gorm"
)

// Service owns the service-order aggregate: it is the single authority
// for item and order totals and for per-user ownership of orders.
type Service struct {
	orders OrderRepository
}

func NewService(orders OrderRepository) *Service {
	return &Service{orders: orders}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// parseDate accepts an ISO calendar date or a full RFC 3339 timestamp,
// which is what the frontend date picker sends.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// buildItems recomputes every item total from quantity × unit price.
// Quantities are rounded to the nearest integer first; client-submitted
// totals are discarded.
func buildItems(inputs []ItemInput) ([]domain.ServiceItem, float64, error) {
	items := make([]domain.ServiceItem, 0, len(inputs))
	orderTotal := 0.0

	for _, in := range inputs {
		qty := int(math.Round(in.Quantity))
		if qty < 0 || in.UnitPrice < 0 {
			return nil, 0, ErrInvalidInput
		}

		total := round2(float64(qty) * in.UnitPrice)
		items = append(items, domain.ServiceItem{
			Description: in.Description,
			Quantity:    qty,
			UnitPrice:   in.UnitPrice,
			Total:       total,
		})
		orderTotal += total
	}

	return items, round2(orderTotal), nil
}

func (s *Service) CreateOrder(ctx context.Context, userID string, req CreateOrderRequest) (*domain.ServiceOrder, error) {
	if userID == "" || strings.TrimSpace(req.Client) == "" || strings.TrimSpace(req.Fleet) == "" {
		return nil, ErrInvalidInput
	}
	if len(req.Items) == 0 {
		return nil, ErrInvalidInput
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidInput
	}

	items, total, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	o := &domain.ServiceOrder{
		UserID:      userID,
		Client:      req.Client,
		Date:        date,
		Fleet:       req.Fleet,
		Farm:        req.Farm,
		Description: req.Description,
		Total:       total,
		Items:       items,
	}

	if err := s.orders.CreateWithItems(ctx, o); err != nil {
		return nil, err
	}

	return s.orders.GetByID(ctx, o.ID)
}

func (s *Service) UpdateOrder(ctx context.Context, orderID, callerID string, admin bool, req UpdateOrderRequest) (*domain.ServiceOrder, error) {
	if strings.TrimSpace(req.Client) == "" || strings.TrimSpace(req.Fleet) == "" || len(req.Items) == 0 {
		return nil, ErrInvalidInput
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidInput
	}

	existing, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if existing.UserID != callerID && !admin {
		return nil, ErrForbidden
	}

	items, total, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	o := &domain.ServiceOrder{
		ID:          orderID,
		UserID:      existing.UserID,
		Client:      req.Client,
		Date:        date,
		Fleet:       req.Fleet,
		Farm:        req.Farm,
		Description: req.Description,
		Total:       total,
		Items:       items,
	}

	if err := s.orders.ReplaceWithItems(ctx, o); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.orders.GetByID(ctx, orderID)
}

// ListOrders returns the caller's orders newest-first. An empty or
// unknown user id yields an empty slice, never an error.
func (s *Service) ListOrders(ctx context.Context, userID string) ([]domain.ServiceOrder, error) {
	if userID == "" {
		return []domain.ServiceOrder{}, nil
	}
	return s.orders.ListByUser(ctx, userID)
}

// DeleteOrder removes the aggregate. Deleting an id that does not exist
// reports ErrNotFound rather than silently succeeding.
func (s *Service) DeleteOrder(ctx context.Context, orderID, callerID string, admin bool) error {
	existing, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if existing.UserID != callerID && !admin {
		return ErrForbidden
	}

	if err := s.orders.DeleteWithItems(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) GetDashboardStats(ctx context.Context, userID string) (*DashboardStats, error) {
	if userID == "" {
		return &DashboardStats{}, nil
	}

	count, revenue, err := s.orders.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalOrders:  count,
		TotalRevenue: round2(revenue),
	}, nil
}
