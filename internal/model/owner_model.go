package model

import (
	"time"

	"github.com/google/uuid"
)

type Owner struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FullName     string    `gorm:"type:varchar(255);not null;default:''"`
	Role         string    `gorm:"type:varchar(50);not null;default:'admin'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Owner) TableName() string {
	return "owners"
}
