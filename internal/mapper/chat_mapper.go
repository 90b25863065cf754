package mapper

import (
	"portfolio-be/internal/entity"
	"portfolio-be/internal/model"
	"portfolio-be/pkg/portfolio"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToEntity(c *model.ChatMessage) *entity.ChatMessage {
	if c == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:             c.Id,
		ConversationId: c.ConversationId,
		Sender:         portfolio.Sender(c.Sender),
		Message:        c.Message,
		Status:         portfolio.MessageStatus(c.Status),
		CreatedAt:      c.CreatedAt,
	}
}

func (m *ChatMapper) ToModel(c *entity.ChatMessage) *model.ChatMessage {
	if c == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:             c.Id,
		ConversationId: c.ConversationId,
		Sender:         string(c.Sender),
		Message:        c.Message,
		Status:         string(c.Status),
		CreatedAt:      c.CreatedAt,
	}
}

func (m *ChatMapper) ToEntities(messages []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(messages))
	for i, c := range messages {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

// ToWire converts an entity into the shape clients exchange.
func (m *ChatMapper) ToWire(c *entity.ChatMessage) portfolio.ChatMessage {
	return portfolio.ChatMessage{
		Id:             c.Id.String(),
		ConversationId: c.ConversationId,
		Sender:         c.Sender,
		Message:        c.Message,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
	}
}

func (m *ChatMapper) ToWires(messages []*entity.ChatMessage) []portfolio.ChatMessage {
	out := make([]portfolio.ChatMessage, 0, len(messages))
	for _, c := range messages {
		out = append(out, m.ToWire(c))
	}
	return out
}

func (m *ChatMapper) SummaryToEntity(r *model.ConversationSummaryRow) *entity.ConversationSummary {
	return &entity.ConversationSummary{
		ConversationId: r.ConversationId,
		MessageCount:   r.MessageCount,
		UnreadCount:    r.UnreadCount,
		LastMessage:    r.LastMessage,
		LastMessageAt:  r.LastMessageAt,
	}
}

func (m *ChatMapper) SummaryToWire(s *entity.ConversationSummary) portfolio.ConversationSummary {
	return portfolio.ConversationSummary{
		ConversationId: s.ConversationId,
		MessageCount:   s.MessageCount,
		UnreadCount:    s.UnreadCount,
		LastMessage:    s.LastMessage,
		LastMessageAt:  s.LastMessageAt,
	}
}
