package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/mapper"
	"portfolio-be/internal/pkg/logger"
	"portfolio-be/internal/repository/specification"
	"portfolio-be/internal/repository/unitofwork"
	"portfolio-be/pkg/events"
	"portfolio-be/pkg/portfolio"

	"github.com/google/uuid"
)

const (
	DefaultMessageLimit = 50
	MaxMessageLimit     = 200
)

type IChatService interface {
	ListMessages(ctx context.Context, conversationId string, limit int) ([]portfolio.ChatMessage, error)
	InsertMessage(ctx context.Context, conversationId string, sender portfolio.Sender, text string) (*portfolio.ChatMessage, error)
	UpdateStatus(ctx context.Context, messageId uuid.UUID, status portfolio.MessageStatus) error
	ListConversations(ctx context.Context) ([]portfolio.ConversationSummary, error)
	MarkConversationRead(ctx context.Context, conversationId string) (int64, error)
	UnreadCount(ctx context.Context) (int64, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	feed       IFeedService
	events     EventPublisher
	mapper     *mapper.ChatMapper
	logger     logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	feed IFeedService,
	publisher EventPublisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		feed:       feed,
		events:     publisher,
		mapper:     mapper.NewChatMapper(),
		logger:     log,
	}
}

func (s *chatService) ListMessages(ctx context.Context, conversationId string, limit int) ([]portfolio.ChatMessage, error) {
	if strings.TrimSpace(conversationId) == "" {
		return nil, fmt.Errorf("%w: conversation id is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	if limit > MaxMessageLimit {
		limit = MaxMessageLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
		specification.OrderBy{Field: "created_at"},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToWires(messages), nil
}

func (s *chatService) InsertMessage(ctx context.Context, conversationId string, sender portfolio.Sender, text string) (*portfolio.ChatMessage, error) {
	if strings.TrimSpace(conversationId) == "" {
		return nil, fmt.Errorf("%w: conversation id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message is empty", ErrInvalidInput)
	}
	if !sender.Valid() {
		return nil, fmt.Errorf("%w: unknown sender %q", ErrInvalidInput, sender)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	record := &entity.ChatMessage{
		ConversationId: conversationId,
		Sender:         sender,
		Message:        text,
		Status:         portfolio.StatusSent,
	}
	if err := uow.ChatMessageRepository().Create(ctx, record); err != nil {
		return nil, err
	}

	saved := s.mapper.ToWire(record)
	s.publishFeed(ctx, portfolio.ConversationTopic(conversationId), portfolio.FeedMessageInserted, saved)
	s.publishFeed(ctx, portfolio.InboxTopic, portfolio.FeedMessageInserted, saved)

	if s.events != nil {
		evt := events.BaseEvent{
			Type: events.ChatMessageCreated,
			Data: map[string]interface{}{
				"message_id":      saved.Id,
				"conversation_id": saved.ConversationId,
				"sender":          string(saved.Sender),
				"message":         saved.Message,
			},
			OccurredAt: time.Now(),
		}
		if err := s.events.Publish(ctx, evt); err != nil {
			s.logger.Warn("CHAT", "Failed to publish domain event", map[string]interface{}{"event": evt.Type, "error": err.Error()})
		}
	}

	return &saved, nil
}

func (s *chatService) UpdateStatus(ctx context.Context, messageId uuid.UUID, status portfolio.MessageStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatMessageRepository()
	found, err := repo.UpdateStatus(ctx, messageId, status)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}

	updated, err := repo.FindOne(ctx, specification.ByID{ID: messageId})
	if err != nil || updated == nil {
		return err
	}
	wire := s.mapper.ToWire(updated)
	s.publishFeed(ctx, portfolio.ConversationTopic(wire.ConversationId), portfolio.FeedMessageUpdated, wire)
	s.publishFeed(ctx, portfolio.InboxTopic, portfolio.FeedMessageUpdated, wire)
	return nil
}

func (s *chatService) ListConversations(ctx context.Context) ([]portfolio.ConversationSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	summaries, err := uow.ChatMessageRepository().Summaries(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]portfolio.ConversationSummary, 0, len(summaries))
	for _, sum := range summaries {
		out = append(out, s.mapper.SummaryToWire(sum))
	}
	return out, nil
}

func (s *chatService) MarkConversationRead(ctx context.Context, conversationId string) (int64, error) {
	if strings.TrimSpace(conversationId) == "" {
		return 0, fmt.Errorf("%w: conversation id is required", ErrInvalidInput)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	updated, err := uow.ChatMessageRepository().MarkConversationRead(ctx, conversationId)
	if err != nil {
		return 0, err
	}

	if updated > 0 {
		s.publishFeed(ctx, portfolio.InboxTopic, portfolio.FeedConversationRead, map[string]interface{}{
			"conversation_id": conversationId,
			"updated":         updated,
		})
	}
	return updated, nil
}

func (s *chatService) UnreadCount(ctx context.Context) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ChatMessageRepository().Count(ctx, specification.Unread{})
}

func (s *chatService) publishFeed(ctx context.Context, topic, eventType string, data interface{}) {
	if err := s.feed.Publish(ctx, topic, eventType, data); err != nil {
		s.logger.Warn("CHAT", "Failed to publish feed event", map[string]interface{}{"topic": topic, "type": eventType, "error": err.Error()})
	}
}
