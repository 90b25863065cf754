package mapper

import (
	"time"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/model"

	"gorm.io/datatypes"
)

type PortfolioMapper struct{}

func NewPortfolioMapper() *PortfolioMapper {
	return &PortfolioMapper{}
}

// ToEntity normalizes the stored document so callers always see a complete structure.
func (m *PortfolioMapper) ToEntity(p *model.PortfolioContent) *entity.PortfolioContent {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	content := p.Content.Data()
	content.Normalize()

	return &entity.PortfolioContent{
		Id:        p.Id,
		OwnerId:   p.OwnerId,
		Content:   content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *PortfolioMapper) ToModel(p *entity.PortfolioContent) *model.PortfolioContent {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.PortfolioContent{
		Id:        p.Id,
		OwnerId:   p.OwnerId,
		Content:   datatypes.NewJSONType(p.Content),
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAt,
	}
}
