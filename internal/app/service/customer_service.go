package service

import (
	"context"
	"time"

	"github.com/agenciathoth/checklist/internal/core/domain"
	"github.com/agenciathoth/checklist/internal/core/ports"
)

type CustomerService struct {
	customers ports.CustomerRepository
	tasks     ports.TaskRepository
}

func NewCustomerService(customers ports.CustomerRepository, tasks ports.TaskRepository) *CustomerService {
	return &CustomerService{customers: customers, tasks: tasks}
}

var _ ports.CustomerService = (*CustomerService)(nil)

func (s *CustomerService) CreateCustomer(ctx context.Context, session *domain.Session, input domain.CustomerInput) (domain.Customer, error) {
	slug, err := s.nextSlug(ctx, input.Name)
	if err != nil {
		return domain.Customer{}, err
	}
	return s.customers.Create(ctx, input, slug, session.UserID)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, session *domain.Session, id uint64, input domain.CustomerInput) error {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return err
	}

	// Renaming only reassigns the slug when the current one no longer
	// derives from the new name; assigned slugs are never reused.
	slug := customer.Slug
	if !domain.SlugMatches(slug, input.Name) {
		slug, err = s.nextSlug(ctx, input.Name)
		if err != nil {
			return err
		}
	}

	return s.customers.Update(ctx, id, input, slug, session.UserID)
}

func (s *CustomerService) nextSlug(ctx context.Context, name string) (string, error) {
	existing, err := s.customers.ListSlugs(ctx, domain.SlugBase(name))
	if err != nil {
		return "", err
	}
	return domain.NextSlug(name, existing), nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint64) error {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !customer.Archived() {
		return domain.ErrNotArchived
	}
	return s.customers.Delete(ctx, id)
}

func (s *CustomerService) ToggleArchive(ctx context.Context, session *domain.Session, id uint64) error {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return err
	}

	var archivedAt *time.Time
	if !customer.Archived() {
		now := time.Now()
		archivedAt = &now
	}
	return s.customers.SetArchived(ctx, id, archivedAt, session.UserID)
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortArchivedLast(customers)
	return customers, nil
}

// GetCustomerPage loads a customer and its tasks for the public per-slug
// page. Without a session, archived customers read as absent and archived
// tasks are hidden.
func (s *CustomerService) GetCustomerPage(ctx context.Context, slug string, includeArchived bool) (domain.Customer, error) {
	customer, err := s.customers.FindBySlug(ctx, slug)
	if err != nil {
		return domain.Customer{}, err
	}
	if customer.Archived() && !includeArchived {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}

	tasks, err := s.tasks.ListByCustomer(ctx, customer.ID, includeArchived)
	if err != nil {
		return domain.Customer{}, err
	}
	domain.SortArchivedLast(tasks)
	customer.Tasks = tasks

	return customer, nil
}

func (s *CustomerService) GetCalendar(ctx context.Context, slug string, month time.Time, includeArchived bool) (domain.CustomerCalendar, error) {
	customer, err := s.GetCustomerPage(ctx, slug, includeArchived)
	if err != nil {
		return domain.CustomerCalendar{}, err
	}

	return domain.CustomerCalendar{
		Customer:   customer,
		Days:       domain.MonthGrid(month),
		Weeks:      domain.WeekRanges(month),
		TasksByDay: domain.BucketTasksByDay(customer.Tasks),
	}, nil
}
