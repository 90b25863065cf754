package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"portfolio-be/pkg/portfolio"
)

// legacyMessage is one entry of the browser-storage chat export.
type legacyMessage struct {
	Id             json.RawMessage `json:"id"`
	ConversationId string          `json:"conversationId"`
	Text           string          `json:"text"`
	Sender         string          `json:"sender"`
	Status         string          `json:"status"`
	Timestamp      legacyTime      `json:"timestamp"`
}

// legacyTime accepts an ISO timestamp or epoch milliseconds.
type legacyTime struct {
	time.Time
}

func (t *legacyTime) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("timestamp %q: %w", s, err)
		}
		t.Time = parsed
		return nil
	}

	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("timestamp %s: %w", raw, err)
	}
	t.Time = time.UnixMilli(ms)
	return nil
}

func parseContent(data []byte) (portfolio.Content, error) {
	var content portfolio.Content
	if err := json.Unmarshal(data, &content); err != nil {
		return portfolio.Content{}, fmt.Errorf("decode portfolio content: %w", err)
	}
	content.Normalize()
	return content, nil
}

// parseMessages converts the export into store messages. Entries with an
// unknown sender or no text are skipped and reported.
func parseMessages(data []byte, now time.Time) ([]portfolio.ChatMessage, []string, error) {
	var entries []legacyMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil, fmt.Errorf("decode chat messages: %w", err)
	}

	var (
		out     = make([]portfolio.ChatMessage, 0, len(entries))
		skipped []string
	)
	for i, e := range entries {
		sender := portfolio.Sender(e.Sender)
		if !sender.Valid() {
			skipped = append(skipped, fmt.Sprintf("#%d: unknown sender %q", i, e.Sender))
			continue
		}
		if strings.TrimSpace(e.Text) == "" {
			skipped = append(skipped, fmt.Sprintf("#%d: empty text", i))
			continue
		}

		status := portfolio.MessageStatus(e.Status)
		if !status.Valid() {
			status = portfolio.StatusSent
		}
		conversation := e.ConversationId
		if conversation == "" {
			conversation = portfolio.LegacyConversationID
		}
		created := e.Timestamp.Time
		if created.IsZero() {
			created = now
		}

		out = append(out, portfolio.ChatMessage{
			ConversationId: conversation,
			Sender:         sender,
			Message:        e.Text,
			Status:         status,
			CreatedAt:      created.UTC(),
		})
	}
	return out, skipped, nil
}
