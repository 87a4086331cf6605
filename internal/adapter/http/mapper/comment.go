package mapper

import (
	"time"

	"github.com/agenciathoth/checklist/internal/adapter/http/dto"
	"github.com/agenciathoth/checklist/internal/core/domain"
)

// ToThreadItems renders assembled threads for a given viewer; the can_*
// flags are what the presentation layer uses to enable actions.
func ToThreadItems(threads []domain.Thread, viewer *domain.Session) []dto.ThreadItem {
	items := make([]dto.ThreadItem, 0, len(threads))
	for _, thread := range threads {
		item := dto.ThreadItem{
			Comment: ToCommentItem(thread.Comment, viewer),
			Replies: make([]dto.CommentItem, 0, len(thread.Replies)),
		}
		for _, reply := range thread.Replies {
			item.Replies = append(item.Replies, ToCommentItem(reply, viewer))
		}
		items = append(items, item)
	}
	return items
}

func ToCommentItem(comment domain.Comment, viewer *domain.Session) dto.CommentItem {
	item := dto.CommentItem{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		ParentID:  comment.ParentID,
		Text:      comment.Text,
		IsLiked:   comment.IsLiked,
		CanLike:   domain.CanLikeComment(viewer, comment),
		CanEdit:   domain.CanModifyComment(viewer, comment, domain.CommentActionEdit),
		CanDelete: domain.CanModifyComment(viewer, comment, domain.CommentActionDelete),
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		UpdatedAt: comment.UpdatedAt.Format(time.RFC3339),
	}

	switch author := comment.Author.(type) {
	case domain.RegisteredAuthor:
		userID := author.UserID
		item.Author = dto.CommentAuthor{Name: author.Name, UserID: &userID}
	case domain.AnonymousAuthor:
		item.Author = dto.CommentAuthor{Name: author.Name, Anonymous: true}
	}

	return item
}
