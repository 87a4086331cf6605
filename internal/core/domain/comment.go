package domain

import "time"

// Commenter is the author of a comment: either a free-text name left by a
// visitor on the public page, or a registered user. Exactly one applies.
type Commenter interface {
	isCommenter()
	DisplayName() string
}

type AnonymousAuthor struct {
	Name string
}

func (AnonymousAuthor) isCommenter() {}

func (a AnonymousAuthor) DisplayName() string { return a.Name }

type RegisteredAuthor struct {
	UserID uint64
	Name   string
}

func (RegisteredAuthor) isCommenter() {}

func (r RegisteredAuthor) DisplayName() string { return r.Name }

type Comment struct {
	ID        uint64
	TaskID    uint64
	ParentID  *uint64
	Author    Commenter
	Text      string
	IsLiked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Comment) IsReply() bool {
	return c.ParentID != nil
}

type CreateCommentInput struct {
	TaskID   uint64
	ParentID *uint64
	Author   Commenter
	Text     string
}
