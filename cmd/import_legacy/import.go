package main

import (
	"context"
	"fmt"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/repository/unitofwork"
	"portfolio-be/pkg/portfolio"
)

func importAll(ctx context.Context, uow unitofwork.UnitOfWork, owner *entity.Owner, content portfolio.Content, messages []portfolio.ChatMessage) error {
	doc := &entity.PortfolioContent{OwnerId: owner.Id, Content: content}
	if err := uow.PortfolioContentRepository().Upsert(ctx, doc); err != nil {
		return fmt.Errorf("upsert content: %w", err)
	}

	repo := uow.ChatMessageRepository()
	for i, m := range messages {
		e := &entity.ChatMessage{
			ConversationId: m.ConversationId,
			Sender:         m.Sender,
			Message:        m.Message,
			Status:         m.Status,
			CreatedAt:      m.CreatedAt,
		}
		if err := repo.Create(ctx, e); err != nil {
			return fmt.Errorf("message #%d: %w", i, err)
		}
	}
	return nil
}
