package mapper

import (
	"time"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/model"
)

type OwnerMapper struct{}

func NewOwnerMapper() *OwnerMapper {
	return &OwnerMapper{}
}

func (m *OwnerMapper) ToEntity(o *model.Owner) *entity.Owner {
	if o == nil {
		return nil
	}

	var updatedAt *time.Time
	if !o.UpdatedAt.IsZero() {
		t := o.UpdatedAt
		updatedAt = &t
	}

	return &entity.Owner{
		Id:           o.Id,
		Email:        o.Email,
		PasswordHash: o.PasswordHash,
		FullName:     o.FullName,
		Role:         entity.OwnerRole(o.Role),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *OwnerMapper) ToModel(o *entity.Owner) *model.Owner {
	if o == nil {
		return nil
	}

	var updatedAt time.Time
	if o.UpdatedAt != nil {
		updatedAt = *o.UpdatedAt
	}

	return &model.Owner{
		Id:           o.Id,
		Email:        o.Email,
		PasswordHash: o.PasswordHash,
		FullName:     o.FullName,
		Role:         string(o.Role),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}
