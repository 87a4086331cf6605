package ports

import (
	"context"
	"io"

	"github.com/agenciathoth/checklist/internal/core/domain"
)

type MediaRepository interface {
	Create(ctx context.Context, input domain.CreateMediaInput, order int, uploadedBy uint64) (domain.Media, error)
	FindByID(ctx context.Context, id uint64) (domain.Media, error)
	Delete(ctx context.Context, id uint64) error
	ListByTask(ctx context.Context, taskID uint64) ([]domain.Media, error)
	UpdateOrder(ctx context.Context, id uint64, order int) error
}

type PresignUploadInput struct {
	FileName   string
	FileType   string
	CustomerID uint64
}

type MediaService interface {
	PresignUpload(ctx context.Context, input PresignUploadInput) (domain.UploadTicket, error)
	Upload(ctx context.Context, customerID uint64, fileName, contentType string, r io.Reader, size int64) (domain.UploadTicket, error)
	RegisterMedia(ctx context.Context, session *domain.Session, input domain.CreateMediaInput) (domain.Media, error)
	SetOrder(ctx context.Context, id uint64, order int) error
	ReorderTaskMedia(ctx context.Context, taskID uint64) error
	DeleteMedia(ctx context.Context, id uint64) error
}
