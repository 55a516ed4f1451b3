package admin

import (
	"context"
	"errors"
	"strings"

	"serviceflow/internal/domain"
	"serviceflow/internal/modules/auth"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Service handles user administration: creating accounts, listing them
// and removing a user together with everything it owns.
type Service struct {
	users UserRepositoryInterface
}

func NewService(users UserRepositoryInterface) *Service {
	return &Service{users: users}
}

func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*auth.UserProfile, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrInvalidInput
	}

	role := domain.RoleUser
	if req.Role != "" {
		role = domain.UserRole(req.Role)
		if role != domain.RoleAdmin && role != domain.RoleUser {
			return nil, ErrInvalidInput
		}
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Concurrent creation can still race past the existence check;
		// the unique index on email is the real guard.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailExists
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	profile := auth.NewUserProfile(user)
	return &profile, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]auth.UserProfile, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]auth.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, auth.NewUserProfile(&users[i]))
	}
	return profiles, nil
}

// DeleteUser cascades through service items, orders, company info and
// clients before removing the user row; the repository runs it atomically.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
