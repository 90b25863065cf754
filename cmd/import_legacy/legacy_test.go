package main

import (
	"testing"
	"time"

	"portfolio-be/pkg/portfolio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMessages(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	raw := []byte(`[
		{"id": 1709294400000, "text": "Hi there", "sender": "user", "timestamp": "2024-03-01T10:00:00.000Z"},
		{"id": "b-1", "text": "Hello!", "sender": "bot", "timestamp": 1709287260000, "status": "read"},
		{"id": 3, "text": "From a visitor", "sender": "user", "conversationId": "chat-1", "status": "archived"},
		{"id": 4, "text": "??", "sender": "system"},
		{"id": 5, "text": "   ", "sender": "user"}
	]`)

	msgs, skipped, err := parseMessages(raw, now)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Len(t, skipped, 2)

	assert.Equal(t, portfolio.LegacyConversationID, msgs[0].ConversationId)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), msgs[0].CreatedAt)
	assert.Equal(t, portfolio.StatusSent, msgs[0].Status)

	assert.Equal(t, portfolio.SenderBot, msgs[1].Sender)
	assert.Equal(t, portfolio.StatusRead, msgs[1].Status)
	assert.Equal(t, time.UnixMilli(1709287260000).UTC(), msgs[1].CreatedAt)

	assert.Equal(t, "chat-1", msgs[2].ConversationId)
	assert.Equal(t, portfolio.StatusSent, msgs[2].Status)
	assert.Equal(t, now, msgs[2].CreatedAt)
}

func TestParseMessages_RejectsMalformedExport(t *testing.T) {
	_, _, err := parseMessages([]byte(`{"not":"a list"}`), time.Now())
	assert.Error(t, err)

	_, _, err = parseMessages([]byte(`[{"text":"x","sender":"user","timestamp":"yesterday"}]`), time.Now())
	assert.Error(t, err)
}

func TestParseContent_Normalizes(t *testing.T) {
	content, err := parseContent([]byte(`{"hero":{"name":"Ada"},"chat":{"enabled":true}}`))
	require.NoError(t, err)

	assert.Equal(t, "Ada", content.Hero.Name)
	assert.NotNil(t, content.Experience)
	assert.NotNil(t, content.Chat.AutoResponses)
	assert.NotEmpty(t, content.Chat.ButtonText)
}
