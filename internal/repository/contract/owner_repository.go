package contract

import (
	"context"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/repository/specification"
)

type OwnerRepository interface {
	Create(ctx context.Context, owner *entity.Owner) error
	Update(ctx context.Context, owner *entity.Owner) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Owner, error)
}
