package dto

type CustomerItem struct {
	ID           uint64     `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Presentation string     `json:"presentation,omitempty"`
	WhatsappLink string     `json:"whatsapp_link,omitempty"`
	ContractLink string     `json:"contract_link,omitempty"`
	GalleryLink  string     `json:"gallery_link,omitempty"`
	ScheduleLink string     `json:"schedule_link,omitempty"`
	ArchivedAt   *string    `json:"archived_at,omitempty"`
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
	Tasks        []TaskItem `json:"tasks,omitempty"`
}

type CustomerRequest struct {
	Name         string  `json:"name" binding:"required,max=255"`
	Presentation *string `json:"presentation" binding:"omitempty,max=65535"`
	Whatsapp     *string `json:"whatsapp" binding:"omitempty,url"`
	Contract     *string `json:"contract" binding:"omitempty,url"`
	Gallery      *string `json:"gallery" binding:"omitempty,url"`
	Schedule     *string `json:"schedule" binding:"omitempty,url"`
}
