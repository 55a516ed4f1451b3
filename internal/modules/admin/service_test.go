package admin

import (
	"context"
	"testing"

	"serviceflow/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && u.ID == "" {
		u.ID = "user-new"
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) DeleteCascade(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_CreateUser_DefaultsToUserRole(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)

	var captured *domain.User
	users.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.User)
		}).
		Return(nil)

	service := NewService(users)

	profile, err := service.CreateUser(context.Background(), CreateUserRequest{
		Email:    "New@Example.com",
		Password: "pass123",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleUser, captured.Role)
	assert.Equal(t, "new@example.com", captured.Email)
	assert.NotEmpty(t, captured.PasswordHash, "stored entity keeps its hash")
	assert.Equal(t, captured.ID, profile.ID)
	assert.Equal(t, "new@example.com", profile.Email)
	assert.Equal(t, domain.RoleUser, profile.Role)
}

func TestService_CreateUser_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&domain.User{ID: "user-1", Email: "taken@example.com"}, nil)

	service := NewService(users)

	_, err := service.CreateUser(context.Background(), CreateUserRequest{
		Email:    "taken@example.com",
		Password: "pass123",
	})

	assert.ErrorIs(t, err, ErrEmailExists)
	users.AssertNotCalled(t, "Create")
}

func TestService_CreateUser_RejectsUnknownRole(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users)

	_, err := service.CreateUser(context.Background(), CreateUserRequest{
		Email:    "new@example.com",
		Password: "pass123",
		Role:     "SUPERUSER",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_DeleteUser_NotFound(t *testing.T) {
	users := new(MockUserRepository)
	users.On("DeleteCascade", mock.Anything, "ghost").Return(gorm.ErrRecordNotFound)

	service := NewService(users)

	err := service.DeleteUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListUsers_ProjectsProfiles(t *testing.T) {
	users := new(MockUserRepository)
	users.On("List", mock.Anything).Return([]domain.User{
		{ID: "a", Email: "a@example.com", Role: domain.RoleAdmin, PasswordHash: "hash-a"},
		{ID: "b", Email: "b@example.com", Role: domain.RoleUser, PasswordHash: "hash-b"},
	}, nil)

	service := NewService(users)

	profiles, err := service.ListUsers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Equal(t, "a", profiles[0].ID)
	assert.Equal(t, domain.RoleUser, profiles[1].Role)
}
