package dto

import "portfolio-be/pkg/portfolio"

type UpsertContentRequest struct {
	Content *portfolio.Content `json:"content" validate:"required"`
}
