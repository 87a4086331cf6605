package mapper

import (
	"time"

	"github.com/agenciathoth/checklist/internal/adapter/http/dto"
	"github.com/agenciathoth/checklist/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		CustomerID:  task.CustomerID,
		Title:       task.Title,
		Due:         task.Due.Format(time.RFC3339),
		Responsible: string(task.Responsible),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}
	if task.Ratio != nil {
		value := *task.Ratio
		item.Ratio = &value
	}
	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}
	if task.ArchivedAt != nil {
		value := task.ArchivedAt.Format(time.RFC3339)
		item.ArchivedAt = &value
	}
	if len(task.Media) > 0 {
		item.Media = ToMediaItems(task.Media)
	}

	return item
}
