package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"portfolio-be/pkg/livesync"
	"portfolio-be/pkg/portfolio"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var (
	_ livesync.ContentStore = (*Client)(nil)
	_ livesync.MessageStore = (*Client)(nil)
)

// GetContent reads the signed-in owner's document, or the public portfolio
// when ownerID is empty. An anonymous viewer with nothing published gets nil.
func (c *Client) GetContent(ctx context.Context, ownerID string) (*portfolio.Content, error) {
	if ownerID == "" {
		var doc portfolio.Content
		err := c.do(ctx, fiber.MethodGet, "/content/v1/public", nil, &doc)
		if errors.Is(err, livesync.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &doc, nil
	}

	if c.Token() == "" {
		return nil, livesync.ErrNotAuthenticated
	}
	var doc portfolio.Content
	if err := c.do(ctx, fiber.MethodGet, "/content/v1", nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *Client) UpsertContent(ctx context.Context, ownerID string, content portfolio.Content) error {
	if ownerID == "" || c.Token() == "" {
		return livesync.ErrNotAuthenticated
	}
	return c.do(ctx, fiber.MethodPut, "/content/v1", map[string]interface{}{"content": content}, nil)
}

func (c *Client) SubscribeContent(ctx context.Context, ownerID string, onChange func(portfolio.Content)) (livesync.Subscription, error) {
	if ownerID == "" {
		return nil, livesync.ErrNotAuthenticated
	}
	return c.subscribe(ctx, portfolio.ContentTopic(ownerID), func(env portfolio.FeedEnvelope) {
		if env.Type != portfolio.FeedContentUpdated {
			return
		}
		var doc portfolio.Content
		if err := json.Unmarshal(env.Data, &doc); err != nil {
			c.logger.Warn("dropping malformed content push", zap.Error(err))
			return
		}
		onChange(doc)
	})
}

func (c *Client) ListMessages(ctx context.Context, conversationID string, limit int) ([]portfolio.ChatMessage, error) {
	path := "/chat/v1/conversations/" + url.PathEscape(conversationID) + "/messages"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	messages := []portfolio.ChatMessage{}
	if err := c.do(ctx, fiber.MethodGet, path, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// InsertMessage posts as a visitor for user and bot senders and through the
// admin route for owner replies.
func (c *Client) InsertMessage(ctx context.Context, conversationID string, sender portfolio.Sender, text string) (portfolio.ChatMessage, error) {
	path := "/chat/v1/conversations/" + url.PathEscape(conversationID) + "/messages"
	body := map[string]string{"message": text, "sender": string(sender)}
	if sender == portfolio.SenderAdmin {
		path = "/chat/v1/admin/conversations/" + url.PathEscape(conversationID) + "/messages"
		body = map[string]string{"message": text}
	}

	var msg portfolio.ChatMessage
	if err := c.do(ctx, fiber.MethodPost, path, body, &msg); err != nil {
		return portfolio.ChatMessage{}, err
	}
	return msg, nil
}

func (c *Client) SubscribeInserts(ctx context.Context, conversationID string, onInsert func(portfolio.ChatMessage)) (livesync.Subscription, error) {
	return c.subscribe(ctx, portfolio.ConversationTopic(conversationID), func(env portfolio.FeedEnvelope) {
		if env.Type != portfolio.FeedMessageInserted {
			return
		}
		var msg portfolio.ChatMessage
		if err := json.Unmarshal(env.Data, &msg); err != nil {
			c.logger.Warn("dropping malformed message push", zap.Error(err))
			return
		}
		onInsert(msg)
	})
}

func (c *Client) UpdateStatus(ctx context.Context, messageID string, status portfolio.MessageStatus) error {
	if livesync.IsProvisional(messageID) {
		return fmt.Errorf("%w: message %s is not stored yet", livesync.ErrNotFound, messageID)
	}
	path := "/chat/v1/admin/messages/" + url.PathEscape(messageID) + "/status"
	return c.do(ctx, fiber.MethodPatch, path, map[string]string{"status": string(status)}, nil)
}
