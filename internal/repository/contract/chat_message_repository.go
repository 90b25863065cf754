package contract

import (
	"context"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/repository/specification"
	"portfolio-be/pkg/portfolio"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// UpdateStatus reports whether a message with that id existed.
	UpdateStatus(ctx context.Context, id uuid.UUID, status portfolio.MessageStatus) (bool, error)
	MarkConversationRead(ctx context.Context, conversationID string) (int64, error)
	Summaries(ctx context.Context) ([]*entity.ConversationSummary, error)
}
