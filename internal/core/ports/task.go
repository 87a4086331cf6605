package ports

import (
	"context"
	"time"

	"github.com/agenciathoth/checklist/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, input domain.CreateTaskInput, updatedBy uint64) (domain.Task, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTaskInput, updatedBy uint64) error
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (domain.Task, error)
	ListByCustomer(ctx context.Context, customerID uint64, includeArchived bool) ([]domain.Task, error)
	SetCompleted(ctx context.Context, id uint64, completedAt *time.Time, updatedBy *uint64) error
	SetArchived(ctx context.Context, id uint64, archivedAt *time.Time, updatedBy uint64) error
}

type TaskService interface {
	CreateTask(ctx context.Context, session *domain.Session, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, session *domain.Session, id uint64, input domain.UpdateTaskInput) error
	DeleteTask(ctx context.Context, id uint64) error
	GetTask(ctx context.Context, id uint64, includeArchived bool) (domain.Task, error)
	ToggleCheck(ctx context.Context, session *domain.Session, id uint64) error
	ToggleArchive(ctx context.Context, session *domain.Session, id uint64) error
}
