package entity

import (
	"time"

	"github.com/google/uuid"
)

type OwnerRole string

const (
	OwnerRoleAdmin OwnerRole = "admin"
)

// Owner is the portfolio owner who edits content and answers chats.
type Owner struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Role         OwnerRole
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
