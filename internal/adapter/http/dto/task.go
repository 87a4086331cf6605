package dto

type TaskItem struct {
	ID          uint64      `json:"id"`
	CustomerID  uint64      `json:"customer_id"`
	Title       string      `json:"title"`
	Description *string     `json:"description,omitempty"`
	Due         string      `json:"due"`
	Responsible string      `json:"responsible"`
	Ratio       *string     `json:"ratio,omitempty"`
	CompletedAt *string     `json:"completed_at,omitempty"`
	ArchivedAt  *string     `json:"archived_at,omitempty"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
	Media       []MediaItem `json:"media,omitempty"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Due         string  `json:"due" binding:"required"`
	Responsible string  `json:"responsible" binding:"required,oneof=CUSTOMER AGENCY"`
	Ratio       *string `json:"ratio" binding:"omitempty,max=16"`
	CustomerID  uint64  `json:"customer_id" binding:"required,gt=0"`
}

type UpdateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Due         string  `json:"due" binding:"required"`
	Responsible string  `json:"responsible" binding:"required,oneof=CUSTOMER AGENCY"`
	Ratio       *string `json:"ratio" binding:"omitempty,max=16"`
}
