package ports

import (
	"context"

	"github.com/agenciathoth/checklist/internal/core/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, input domain.CreateCommentInput) (domain.Comment, error)
	FindByID(ctx context.Context, id uint64) (domain.Comment, error)
	UpdateText(ctx context.Context, id uint64, text string) error
	Delete(ctx context.Context, id uint64) error
	SetLiked(ctx context.Context, id uint64, liked bool) error
	ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error)
}

type CommentService interface {
	ListThreads(ctx context.Context, taskID uint64) ([]domain.Thread, error)
	CreateComment(ctx context.Context, session *domain.Session, taskID uint64, text, author string, parentID *uint64) (domain.Comment, error)
	UpdateComment(ctx context.Context, session *domain.Session, id uint64, text string) error
	DeleteComment(ctx context.Context, session *domain.Session, id uint64) error
	ToggleLike(ctx context.Context, session *domain.Session, id uint64) error
}
