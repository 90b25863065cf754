package specification

import (
	"portfolio-be/pkg/portfolio"

	"gorm.io/gorm"
)

type ByConversationID struct {
	ConversationID string
}

func (s ByConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}

type BySender struct {
	Sender portfolio.Sender
}

func (s BySender) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sender = ?", string(s.Sender))
}

// Unread matches visitor messages the owner has not read yet.
type Unread struct{}

func (s Unread) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sender = ? AND status <> ?", string(portfolio.SenderUser), string(portfolio.StatusRead))
}
