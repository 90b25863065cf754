package contract

import (
	"context"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/repository/specification"
)

type PortfolioContentRepository interface {
	// Create fails with ErrDuplicate when the owner already has a document.
	Create(ctx context.Context, content *entity.PortfolioContent) error
	// Upsert inserts or replaces the owner's document.
	Upsert(ctx context.Context, content *entity.PortfolioContent) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PortfolioContent, error)
}
