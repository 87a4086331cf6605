package domain

import "time"

type TaskResponsible string

const (
	TaskResponsibleCustomer TaskResponsible = "CUSTOMER"
	TaskResponsibleAgency   TaskResponsible = "AGENCY"
)

type Task struct {
	ID          uint64
	CustomerID  uint64
	Title       string
	Description *string
	Due         time.Time
	Responsible TaskResponsible
	Ratio       *string
	CompletedAt *time.Time
	ArchivedAt  *time.Time
	UpdatedByID *uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Media       []Media
}

func (t Task) Archived() bool {
	return t.ArchivedAt != nil
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Due         time.Time
	Responsible TaskResponsible
	Ratio       *string
	CustomerID  uint64
}

type UpdateTaskInput struct {
	Title       string
	Description *string
	Due         time.Time
	Responsible TaskResponsible
	Ratio       *string
}
