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
	"gorm.io/gorm/clause"
)

type PortfolioContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PortfolioMapper
}

func NewPortfolioContentRepository(db *gorm.DB) contract.PortfolioContentRepository {
	return &PortfolioContentRepositoryImpl{
		db:     db,
		mapper: mapper.NewPortfolioMapper(),
	}
}

func (r *PortfolioContentRepositoryImpl) Create(ctx context.Context, content *entity.PortfolioContent) error {
	m := r.mapper.ToModel(content)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*content = *r.mapper.ToEntity(m)
	return nil
}

func (r *PortfolioContentRepositoryImpl) Upsert(ctx context.Context, content *entity.PortfolioContent) error {
	m := r.mapper.ToModel(content)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*content = *r.mapper.ToEntity(m)
	return nil
}

func (r *PortfolioContentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PortfolioContent, error) {
	var m model.PortfolioContent
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
