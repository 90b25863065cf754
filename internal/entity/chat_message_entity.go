package entity

import (
	"time"

	"portfolio-be/pkg/portfolio"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id             uuid.UUID
	ConversationId string
	Sender         portfolio.Sender
	Message        string
	Status         portfolio.MessageStatus
	CreatedAt      time.Time
}

type ConversationSummary struct {
	ConversationId string
	MessageCount   int64
	UnreadCount    int64
	LastMessage    string
	LastMessageAt  time.Time
}
