package domain

import "time"

type Media struct {
	ID           uint64
	TaskID       uint64
	Path         string
	URL          string // public URL, derived from Path by the storage adapter
	Type         string
	Order        int
	UploadedByID uint64
	CreatedAt    time.Time
}

type CreateMediaInput struct {
	TaskID uint64
	Path   string
	Type   string
}

// UploadTicket is what a client needs to push a file straight to object
// storage and register it afterwards.
type UploadTicket struct {
	URL  string
	Path string
	Type string
}
