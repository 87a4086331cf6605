package ports

import (
	"context"
	"time"

	"github.com/agenciathoth/checklist/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, input domain.CreateUserInput, passwordHash string) (domain.User, error)
	Update(ctx context.Context, id uint64, input domain.UpdateUserInput, passwordHash *string) error
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	SetArchived(ctx context.Context, id uint64, archivedAt *time.Time) error
}

type UserService interface {
	CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
	UpdateUser(ctx context.Context, id uint64, input domain.UpdateUserInput) error
	DeleteUser(ctx context.Context, id uint64) error
	ToggleArchive(ctx context.Context, id uint64) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, domain.User, error)
	ParseToken(token string) (domain.Session, error)
}
