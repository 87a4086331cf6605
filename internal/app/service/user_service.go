package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/agenciathoth/checklist/internal/core/domain"
	"github.com/agenciathoth/checklist/internal/core/ports"
)

// Matches the cost the legacy system hashed with, so existing hashes stay
// valid.
const bcryptCost = 8

type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

var _ ports.UserService = (*UserService)(nil)

func (s *UserService) CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	_, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil {
		return domain.User{}, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return domain.User{}, err
	}
	return s.users.Create(ctx, input, string(hash))
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, input domain.UpdateUserInput) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if input.Email != user.Email {
		other, err := s.users.FindByEmail(ctx, input.Email)
		if err == nil && other.ID != id {
			return domain.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
	}

	var passwordHash *string
	if input.Password != nil && *input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return err
		}
		value := string(hash)
		passwordHash = &value
	}

	return s.users.Update(ctx, id, input, passwordHash)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.Archived() {
		return domain.ErrNotArchived
	}
	return s.users.Delete(ctx, id)
}

func (s *UserService) ToggleArchive(ctx context.Context, id uint64) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	var archivedAt *time.Time
	if !user.Archived() {
		now := time.Now()
		archivedAt = &now
	}
	return s.users.SetArchived(ctx, id, archivedAt)
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortArchivedLast(users)
	return users, nil
}
