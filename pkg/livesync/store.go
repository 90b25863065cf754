// Package livesync keeps an in-memory copy of remote portfolio data current.
//
// ContentSync mirrors the owner's portfolio document; MessageSync mirrors the
// message list of one chat conversation, merging the initial read, optimistic
// local sends and pushed inserts into a single duplicate-free, time-ordered list.
package livesync

import (
	"context"

	"portfolio-be/pkg/portfolio"
)

// Subscription is a live push channel. Unsubscribe stops delivery; callbacks may
// still be running while it returns but none start afterwards.
type Subscription interface {
	Unsubscribe() error
}

// SubscriptionFunc adapts a plain function to Subscription.
type SubscriptionFunc func() error

func (f SubscriptionFunc) Unsubscribe() error {
	return f()
}

// ContentStore persists one document per owner. An empty ownerID stands for an
// anonymous viewer. GetContent creates and stores the default document when the
// owner has none yet, and may return a nil document for anonymous viewers.
type ContentStore interface {
	GetContent(ctx context.Context, ownerID string) (*portfolio.Content, error)
	UpsertContent(ctx context.Context, ownerID string, content portfolio.Content) error
	// SubscribeContent delivers the full document after every change. ctx bounds
	// only the subscription handshake.
	SubscribeContent(ctx context.Context, ownerID string, onChange func(portfolio.Content)) (Subscription, error)
}

// MessageStore is an append-only, per-conversation message log. Pushed inserts are
// delivered at least once and may be duplicated or reordered.
type MessageStore interface {
	ListMessages(ctx context.Context, conversationID string, limit int) ([]portfolio.ChatMessage, error)
	InsertMessage(ctx context.Context, conversationID string, sender portfolio.Sender, text string) (portfolio.ChatMessage, error)
	// SubscribeInserts delivers every message inserted into the conversation. ctx
	// bounds only the subscription handshake.
	SubscribeInserts(ctx context.Context, conversationID string, onInsert func(portfolio.ChatMessage)) (Subscription, error)
	UpdateStatus(ctx context.Context, messageID string, status portfolio.MessageStatus) error
}
