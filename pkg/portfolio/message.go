package portfolio

import "time"

type Sender string

const (
	SenderUser  Sender = "user"
	SenderBot   Sender = "bot"
	SenderAdmin Sender = "admin"
)

func (s Sender) Valid() bool {
	switch s {
	case SenderUser, SenderBot, SenderAdmin:
		return true
	}
	return false
}

type MessageStatus string

const (
	StatusSent MessageStatus = "sent"
	StatusRead MessageStatus = "read"
)

func (s MessageStatus) Valid() bool {
	return s == StatusSent || s == StatusRead
}

// LegacyConversationID scopes messages written before conversations were per visitor.
const LegacyConversationID = "portfolio-chat"

// ChatMessage is append-only; only Status changes after insert.
type ChatMessage struct {
	Id             string        `json:"id"`
	ConversationId string        `json:"conversation_id"`
	Sender         Sender        `json:"sender"`
	Message        string        `json:"message"`
	Status         MessageStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
}

// ConversationSummary is the admin inbox view of one conversation.
type ConversationSummary struct {
	ConversationId string    `json:"conversation_id"`
	MessageCount   int64     `json:"message_count"`
	UnreadCount    int64     `json:"unread_count"`
	LastMessage    string    `json:"last_message"`
	LastMessageAt  time.Time `json:"last_message_at"`
}
