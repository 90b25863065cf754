package implementation

import (
	"context"
	"errors"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/mapper"
	"portfolio-be/internal/model"
	"portfolio-be/internal/repository/contract"
	"portfolio-be/internal/repository/specification"

	"gorm.io/gorm"
)

type OwnerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OwnerMapper
}

func NewOwnerRepository(db *gorm.DB) contract.OwnerRepository {
	return &OwnerRepositoryImpl{
		db:     db,
		mapper: mapper.NewOwnerMapper(),
	}
}

func (r *OwnerRepositoryImpl) Create(ctx context.Context, owner *entity.Owner) error {
	m := r.mapper.ToModel(owner)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*owner = *r.mapper.ToEntity(m)
	return nil
}

func (r *OwnerRepositoryImpl) Update(ctx context.Context, owner *entity.Owner) error {
	m := r.mapper.ToModel(owner)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*owner = *r.mapper.ToEntity(m)
	return nil
}

func (r *OwnerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Owner, error) {
	var m model.Owner
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
