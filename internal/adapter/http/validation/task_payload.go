package validation

import (
	"errors"
	"strings"
	"time"

	"github.com/agenciathoth/checklist/internal/adapter/http/dto"
	"github.com/agenciathoth/checklist/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	due, err := time.Parse(time.RFC3339, req.Due)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		Due:         due,
		Responsible: domain.TaskResponsible(req.Responsible),
		Ratio:       req.Ratio,
		CustomerID:  req.CustomerID,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest) (domain.UpdateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	due, err := time.Parse(time.RFC3339, req.Due)
	if err != nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateTaskInput{
		Title:       title,
		Description: req.Description,
		Due:         due,
		Responsible: domain.TaskResponsible(req.Responsible),
		Ratio:       req.Ratio,
	}, nil
}
