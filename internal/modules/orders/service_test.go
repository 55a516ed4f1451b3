package orders

import (
	"context"
	"testing"

	"serviceflow/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateWithItems(ctx context.Context, o *domain.ServiceOrder) error {
	args := m.Called(ctx, o)
	if o != nil && o.ID == "" {
		o.ID = "order-1"
	}
	return args.Error(0)
}

func (m *MockOrderRepository) ReplaceWithItems(ctx context.Context, o *domain.ServiceOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOrder), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID string) ([]domain.ServiceOrder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceOrder), args.Error(1)
}

func (m *MockOrderRepository) DeleteWithItems(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Stats(ctx context.Context, userID string) (int64, float64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Get(1).(float64), args.Error(2)
}

func validCreateRequest() CreateOrderRequest {
	return CreateOrderRequest{
		Client: "Jane Doe",
		Date:   "2024-03-01",
		Fleet:  "ABC-1234",
		Items: []ItemInput{
			{Quantity: 2, Description: "Oil change", UnitPrice: 50.00},
		},
	}
}

func TestService_CreateOrder_ComputesTotals(t *testing.T) {
	repo := new(MockOrderRepository)

	var captured *domain.ServiceOrder
	repo.On("CreateWithItems", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.ServiceOrder)
		}).
		Return(nil)
	repo.On("GetByID", mock.Anything, "order-1").
		Return(&domain.ServiceOrder{ID: "order-1"}, nil)

	service := NewService(repo)

	order, err := service.CreateOrder(context.Background(), "user-1", validCreateRequest())

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, 100.00, captured.Total)
	assert.Len(t, captured.Items, 1)
	assert.Equal(t, 100.00, captured.Items[0].Total)
	assert.Equal(t, 2, captured.Items[0].Quantity)
}

func TestService_CreateOrder_DiscardsClientTotals(t *testing.T) {
	repo := new(MockOrderRepository)

	var captured *domain.ServiceOrder
	repo.On("CreateWithItems", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.ServiceOrder)
		}).
		Return(nil)
	repo.On("GetByID", mock.Anything, "order-1").
		Return(&domain.ServiceOrder{ID: "order-1"}, nil)

	service := NewService(repo)

	req := validCreateRequest()
	req.Items = []ItemInput{
		{Quantity: 3, Description: "Brake pads", UnitPrice: 10.50, Total: 999.99},
	}

	_, err := service.CreateOrder(context.Background(), "user-1", req)

	assert.NoError(t, err)
	assert.Equal(t, 31.50, captured.Items[0].Total, "client-sent total must be ignored")
	assert.Equal(t, 31.50, captured.Total)
}

func TestService_CreateOrder_RoundsFractionalQuantity(t *testing.T) {
	repo := new(MockOrderRepository)

	var captured *domain.ServiceOrder
	repo.On("CreateWithItems", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.ServiceOrder)
		}).
		Return(nil)
	repo.On("GetByID", mock.Anything, "order-1").
		Return(&domain.ServiceOrder{ID: "order-1"}, nil)

	service := NewService(repo)

	req := validCreateRequest()
	req.Items = []ItemInput{{Quantity: 2.6, Description: "Filter", UnitPrice: 10}}

	_, err := service.CreateOrder(context.Background(), "user-1", req)

	assert.NoError(t, err)
	assert.Equal(t, 3, captured.Items[0].Quantity)
	assert.Equal(t, 30.00, captured.Items[0].Total)
}

func TestService_CreateOrder_InvalidDate(t *testing.T) {
	repo := new(MockOrderRepository)
	service := NewService(repo)

	req := validCreateRequest()
	req.Date = "not-a-date"

	_, err := service.CreateOrder(context.Background(), "user-1", req)

	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "CreateWithItems")
}

func TestService_CreateOrder_AcceptsRFC3339Date(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("CreateWithItems", mock.Anything, mock.Anything).Return(nil)
	repo.On("GetByID", mock.Anything, "order-1").
		Return(&domain.ServiceOrder{ID: "order-1"}, nil)

	service := NewService(repo)

	req := validCreateRequest()
	req.Date = "2024-03-01T10:30:00Z"

	_, err := service.CreateOrder(context.Background(), "user-1", req)
	assert.NoError(t, err)
}

func TestService_CreateOrder_EmptyItems(t *testing.T) {
	repo := new(MockOrderRepository)
	service := NewService(repo)

	req := validCreateRequest()
	req.Items = nil

	_, err := service.CreateOrder(context.Background(), "user-1", req)

	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "CreateWithItems")
}

func TestService_CreateOrder_MissingRequiredFields(t *testing.T) {
	repo := new(MockOrderRepository)
	service := NewService(repo)

	for _, mutate := range []func(*CreateOrderRequest){
		func(r *CreateOrderRequest) { r.Client = "  " },
		func(r *CreateOrderRequest) { r.Fleet = "" },
	} {
		req := validCreateRequest()
		mutate(&req)
		_, err := service.CreateOrder(context.Background(), "user-1", req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	_, err := service.CreateOrder(context.Background(), "", validCreateRequest())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_CreateOrder_NegativeValues(t *testing.T) {
	repo := new(MockOrderRepository)
	service := NewService(repo)

	req := validCreateRequest()
	req.Items = []ItemInput{{Quantity: -1, UnitPrice: 10}}
	_, err := service.CreateOrder(context.Background(), "user-1", req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req.Items = []ItemInput{{Quantity: 1, UnitPrice: -10}}
	_, err = service.CreateOrder(context.Background(), "user-1", req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateOrder_ReplacesItemsAndRecomputes(t *testing.T) {
	repo := new(MockOrderRepository)

	repo.On("GetByID", mock.Anything, "order-1").
		Return(&domain.ServiceOrder{ID: "order-1", UserID: "user-1"}, nil)

	var captured *domain.ServiceOrder
	repo.On("ReplaceWithItems", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.ServiceOrder)
		}).
		Return(nil)

	service := NewService(repo)

	req := UpdateOrderRequest{
		Client: "Jane Doe",
		Date:   "2024-03-02",
		Fleet:  "ABC-1234",
		Items: []ItemInput{
			{Quantity: 1, Description: "Part A", UnitPrice: 30.00},
			{Quantity: 1, Description: "Part B", UnitPrice: 70.00},
		},
	}

	_, err := service.UpdateOrder(context.Background(), "order-1", "user-1", false, req)

	assert.NoError(t, err)
	assert.Len(t, captured.Items, 2)
	assert.Equal(t, 100.00, captured.Total)
}

func TestService_UpdateOrder_NotFound(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo)

	req := UpdateOrderRequest{
		Client: "X", Date: "2024-01-01", Fleet: "F",
		Items: []ItemInput{{Quantity: 1, UnitPrice: 1}},
	}

	_, err := service.UpdateOrder(context.Background(), "missing", "user-1", false, req)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_UpdateOrder_ForbiddenForOtherUser(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("GetByID", mock.Anything, "order-1").
		Return(&domain.ServiceOrder{ID: "order-1", UserID: "owner"}, nil)

	service := NewService(repo)

	req := UpdateOrderRequest{
		Client: "X", Date: "2024-01-01", Fleet: "F",
		Items: []ItemInput{{Quantity: 1, UnitPrice: 1}},
	}

	_, err := service.UpdateOrder(context.Background(), "order-1", "intruder", false, req)
	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "ReplaceWithItems")
}

func TestService_ListOrders_EmptyUserID(t *testing.T) {
	repo := new(MockOrderRepository)
	service := NewService(repo)

	list, err := service.ListOrders(context.Background(), "")

	assert.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	repo.AssertNotCalled(t, "ListByUser")
}

func TestService_DeleteOrder_NotFound(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo)

	err := service.DeleteOrder(context.Background(), "missing", "user-1", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeleteOrder_ForbiddenForOtherUser(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("GetByID", mock.Anything, "order-1").
		Return(&domain.ServiceOrder{ID: "order-1", UserID: "owner"}, nil)

	service := NewService(repo)

	err := service.DeleteOrder(context.Background(), "order-1", "intruder", false)
	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "DeleteWithItems")
}

func TestService_GetDashboardStats_ZeroOrders(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("Stats", mock.Anything, "user-1").Return(int64(0), 0.0, nil)

	service := NewService(repo)

	stats, err := service.GetDashboardStats(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalOrders)
	assert.Equal(t, 0.0, stats.TotalRevenue)
}

func TestService_GetDashboardStats_SumsRevenue(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("Stats", mock.Anything, "user-1").Return(int64(3), 1250.75, nil)

	service := NewService(repo)

	stats, err := service.GetDashboardStats(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.Equal(t, 1250.75, stats.TotalRevenue)
}
