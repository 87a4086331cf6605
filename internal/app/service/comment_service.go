package service

import (
	"context"
	"strings"

	"github.com/agenciathoth/checklist/internal/core/domain"
	"github.com/agenciathoth/checklist/internal/core/ports"
)

type CommentService struct {
	comments ports.CommentRepository
	tasks    ports.TaskRepository
}

func NewCommentService(comments ports.CommentRepository, tasks ports.TaskRepository) *CommentService {
	return &CommentService{comments: comments, tasks: tasks}
}

var _ ports.CommentService = (*CommentService)(nil)

func (s *CommentService) ListThreads(ctx context.Context, taskID uint64) ([]domain.Thread, error) {
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return domain.BuildThreads(comments), nil
}

// CreateComment records a comment as either a registered user (session) or
// an anonymous visitor (free-text author). Replies attach only to top-level
// comments of the same task.
func (s *CommentService) CreateComment(ctx context.Context, session *domain.Session, taskID uint64, text, author string, parentID *uint64) (domain.Comment, error) {
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return domain.Comment{}, err
	}

	if parentID != nil {
		parent, err := s.comments.FindByID(ctx, *parentID)
		if err != nil {
			return domain.Comment{}, err
		}
		if parent.TaskID != taskID || parent.IsReply() {
			return domain.Comment{}, domain.ErrNestedReply
		}
	}

	var commenter domain.Commenter
	if session != nil {
		commenter = domain.RegisteredAuthor{UserID: session.UserID, Name: session.Name}
	} else {
		name := strings.TrimSpace(author)
		if name == "" {
			return domain.Comment{}, domain.ErrUnauthorized
		}
		commenter = domain.AnonymousAuthor{Name: name}
	}

	return s.comments.Create(ctx, domain.CreateCommentInput{
		TaskID:   taskID,
		ParentID: parentID,
		Author:   commenter,
		Text:     text,
	})
}

func (s *CommentService) UpdateComment(ctx context.Context, session *domain.Session, id uint64, text string) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanModifyComment(session, comment, domain.CommentActionEdit) {
		return domain.ErrUnauthorized
	}
	return s.comments.UpdateText(ctx, id, text)
}

func (s *CommentService) DeleteComment(ctx context.Context, session *domain.Session, id uint64) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanModifyComment(session, comment, domain.CommentActionDelete) {
		return domain.ErrUnauthorized
	}
	return s.comments.Delete(ctx, id)
}

func (s *CommentService) ToggleLike(ctx context.Context, session *domain.Session, id uint64) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanLikeComment(session, comment) {
		return domain.ErrUnauthorized
	}
	return s.comments.SetLiked(ctx, id, !comment.IsLiked)
}
