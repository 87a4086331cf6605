package ports

import (
	"context"
	"time"

	"github.com/agenciathoth/checklist/internal/core/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, input domain.CustomerInput, slug string, updatedBy uint64) (domain.Customer, error)
	Update(ctx context.Context, id uint64, input domain.CustomerInput, slug string, updatedBy uint64) error
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (domain.Customer, error)
	FindBySlug(ctx context.Context, slug string) (domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	ListSlugs(ctx context.Context, base string) ([]string, error)
	SetArchived(ctx context.Context, id uint64, archivedAt *time.Time, updatedBy uint64) error
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, session *domain.Session, input domain.CustomerInput) (domain.Customer, error)
	UpdateCustomer(ctx context.Context, session *domain.Session, id uint64, input domain.CustomerInput) error
	DeleteCustomer(ctx context.Context, id uint64) error
	ToggleArchive(ctx context.Context, session *domain.Session, id uint64) error
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomerPage(ctx context.Context, slug string, includeArchived bool) (domain.Customer, error)
	GetCalendar(ctx context.Context, slug string, month time.Time, includeArchived bool) (domain.CustomerCalendar, error)
}
