package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId string    `gorm:"type:varchar(100);not null;index:idx_chat_messages_conversation_created,priority:1"`
	Sender         string    `gorm:"type:varchar(20);not null"`
	Message        string    `gorm:"type:text;not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'sent'"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index:idx_chat_messages_conversation_created,priority:2"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

// ConversationSummaryRow is the scan target of the inbox aggregate query.
type ConversationSummaryRow struct {
	ConversationId string
	MessageCount   int64
	UnreadCount    int64
	LastMessage    string
	LastMessageAt  time.Time
}
