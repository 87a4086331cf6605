package domain

import "time"

type Customer struct {
	ID           uint64
	Name         string
	Slug         string
	Presentation string
	WhatsappLink string
	ContractLink string
	GalleryLink  string
	ScheduleLink string
	ArchivedAt   *time.Time
	UpdatedByID  uint64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Tasks        []Task
}

func (c Customer) Archived() bool {
	return c.ArchivedAt != nil
}

type CustomerInput struct {
	Name         string
	Presentation string
	WhatsappLink string
	ContractLink string
	GalleryLink  string
	ScheduleLink string
}
