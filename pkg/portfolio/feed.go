package portfolio

import (
	"encoding/json"
	"strings"
)

// Change feed event types carried in FeedEnvelope.Type.
const (
	FeedContentUpdated   = "content.updated"
	FeedMessageInserted  = "message.inserted"
	FeedMessageUpdated   = "message.updated"
	FeedConversationRead = "conversation.read"
)

const (
	contentTopicPrefix      = "content:"
	conversationTopicPrefix = "conversation:"
	InboxTopic              = "inbox"
)

// FeedEnvelope is one push event as delivered to realtime subscribers.
type FeedEnvelope struct {
	Topic string          `json:"topic"`
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
}

func ContentTopic(ownerID string) string {
	return contentTopicPrefix + ownerID
}

func ConversationTopic(conversationID string) string {
	return conversationTopicPrefix + conversationID
}

// ParseTopic splits a topic into its kind ("content", "conversation", "inbox")
// and key. ok is false for anything else.
func ParseTopic(topic string) (kind, key string, ok bool) {
	switch {
	case topic == InboxTopic:
		return InboxTopic, "", true
	case strings.HasPrefix(topic, contentTopicPrefix) && len(topic) > len(contentTopicPrefix):
		return "content", strings.TrimPrefix(topic, contentTopicPrefix), true
	case strings.HasPrefix(topic, conversationTopicPrefix) && len(topic) > len(conversationTopicPrefix):
		return "conversation", strings.TrimPrefix(topic, conversationTopicPrefix), true
	}
	return "", "", false
}
