package service

import (
	"context"
	"time"

	"github.com/agenciathoth/checklist/internal/core/domain"
	"github.com/agenciathoth/checklist/internal/core/ports"
)

type TaskService struct {
	tasks     ports.TaskRepository
	customers ports.CustomerRepository
	media     ports.MediaRepository
	storage   ports.ObjectStorage
}

func NewTaskService(tasks ports.TaskRepository, customers ports.CustomerRepository, media ports.MediaRepository, storage ports.ObjectStorage) *TaskService {
	return &TaskService{tasks: tasks, customers: customers, media: media, storage: storage}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) CreateTask(ctx context.Context, session *domain.Session, input domain.CreateTaskInput) (domain.Task, error) {
	if _, err := s.customers.FindByID(ctx, input.CustomerID); err != nil {
		return domain.Task{}, err
	}
	return s.tasks.Create(ctx, input, session.UserID)
}

func (s *TaskService) UpdateTask(ctx context.Context, session *domain.Session, id uint64, input domain.UpdateTaskInput) error {
	if _, err := s.tasks.FindByID(ctx, id); err != nil {
		return err
	}
	return s.tasks.Update(ctx, id, input, session.UserID)
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !task.Archived() {
		return domain.ErrNotArchived
	}
	return s.tasks.Delete(ctx, id)
}

func (s *TaskService) GetTask(ctx context.Context, id uint64, includeArchived bool) (domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if task.Archived() && !includeArchived {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	media, err := s.media.ListByTask(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	for i := range media {
		media[i].URL = s.storage.PublicURL(media[i].Path)
	}
	task.Media = media

	return task, nil
}

// ToggleCheck flips completedAt. Customer-owned tasks may be checked from
// the public page without a session; agency tasks require one. updatedBy is
// recorded only when a session exists.
func (s *TaskService) ToggleCheck(ctx context.Context, session *domain.Session, id uint64) error {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if task.Responsible != domain.TaskResponsibleCustomer && session == nil {
		return domain.ErrUnauthorized
	}

	var completedAt *time.Time
	if task.CompletedAt == nil {
		now := time.Now()
		completedAt = &now
	}

	var updatedBy *uint64
	if session != nil {
		updatedBy = &session.UserID
	}
	return s.tasks.SetCompleted(ctx, id, completedAt, updatedBy)
}

func (s *TaskService) ToggleArchive(ctx context.Context, session *domain.Session, id uint64) error {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return err
	}

	var archivedAt *time.Time
	if !task.Archived() {
		now := time.Now()
		archivedAt = &now
	}
	return s.tasks.SetArchived(ctx, id, archivedAt, session.UserID)
}
