package dto

type MediaItem struct {
	ID        uint64 `json:"id"`
	TaskID    uint64 `json:"task_id"`
	Path      string `json:"path"`
	URL       string `json:"url"`
	Type      string `json:"type"`
	Order     int    `json:"order"`
	CreatedAt string `json:"created_at"`
}

type PresignUploadRequest struct {
	FileName   string `json:"file_name" binding:"required,max=255"`
	FileType   string `json:"file_type" binding:"required,max=255"`
	CustomerID uint64 `json:"customer_id" binding:"required,gt=0"`
}

type UploadTicket struct {
	URL  string `json:"url,omitempty"`
	Path string `json:"path"`
	Type string `json:"type"`
}

type CreateMediaRequest struct {
	TaskID uint64 `json:"task_id" binding:"required,gt=0"`
	Path   string `json:"path" binding:"required,max=512"`
	Type   string `json:"type" binding:"required,max=32"`
}

type UpdateMediaOrderRequest struct {
	Order int `json:"order" binding:"required,gt=0"`
}
