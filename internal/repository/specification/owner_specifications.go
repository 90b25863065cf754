package specification

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(email) = ?", strings.ToLower(s.Email))
}

type ByOwnerID struct {
	OwnerID uuid.UUID
}

func (s ByOwnerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerID)
}
