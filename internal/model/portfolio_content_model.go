package model

import (
	"time"

	"portfolio-be/pkg/portfolio"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PortfolioContent struct {
	Id        uuid.UUID                             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId   uuid.UUID                             `gorm:"type:uuid;not null;uniqueIndex"`
	Content   datatypes.JSONType[portfolio.Content] `gorm:"type:jsonb;not null"`
	CreatedAt time.Time                             `gorm:"autoCreateTime"`
	UpdatedAt time.Time                             `gorm:"autoUpdateTime"`
}

func (PortfolioContent) TableName() string {
	return "portfolio_content"
}
