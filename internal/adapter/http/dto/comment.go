package dto

type CommentAuthor struct {
	Name      string  `json:"name"`
	UserID    *uint64 `json:"user_id,omitempty"`
	Anonymous bool    `json:"anonymous"`
}

type CommentItem struct {
	ID        uint64        `json:"id"`
	TaskID    uint64        `json:"task_id"`
	ParentID  *uint64       `json:"parent_id,omitempty"`
	Author    CommentAuthor `json:"author"`
	Text      string        `json:"text"`
	IsLiked   bool          `json:"is_liked"`
	CanLike   bool          `json:"can_like"`
	CanEdit   bool          `json:"can_edit"`
	CanDelete bool          `json:"can_delete"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

type ThreadItem struct {
	Comment CommentItem   `json:"comment"`
	Replies []CommentItem `json:"replies"`
}

type CreateCommentRequest struct {
	Text     string  `json:"text" binding:"required"`
	Author   *string `json:"author" binding:"omitempty,max=255"`
	ParentID *uint64 `json:"parent_id" binding:"omitempty,gt=0"`
}

type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}
