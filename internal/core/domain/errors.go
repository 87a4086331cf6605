package domain

import "errors"

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrMediaNotFound      = errors.New("media not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotArchived        = errors.New("entity must be archived before deletion")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNestedReply        = errors.New("replies cannot be nested")
)
