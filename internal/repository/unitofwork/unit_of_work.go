package unitofwork

import (
	"context"

	"portfolio-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	OwnerRepository() contract.OwnerRepository
	PortfolioContentRepository() contract.PortfolioContentRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
