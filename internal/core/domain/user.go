package domain

import "time"

type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleEditor UserRole = "EDITOR"
)

type User struct {
	ID         uint64
	Name       string
	Email      string
	Password   string // bcrypt hash
	Role       UserRole
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (u User) Archived() bool {
	return u.ArchivedAt != nil
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     UserRole
}

type UpdateUserInput struct {
	Name     string
	Email    string
	Password *string // nil or empty keeps the current hash
	Role     UserRole
}

// Session identifies the authenticated user of a request. A nil *Session
// means the request is anonymous.
type Session struct {
	UserID uint64
	Name   string
	Role   UserRole
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == UserRoleAdmin
}
