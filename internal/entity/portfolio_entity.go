package entity

import (
	"time"

	"portfolio-be/pkg/portfolio"

	"github.com/google/uuid"
)

// PortfolioContent is the single stored document for one owner.
type PortfolioContent struct {
	Id        uuid.UUID
	OwnerId   uuid.UUID
	Content   portfolio.Content
	CreatedAt time.Time
	UpdatedAt *time.Time
}
