package events

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	ChatMessageCreated      = "CHAT_MESSAGE_CREATED"
	PortfolioContentUpdated = "PORTFOLIO_CONTENT_UPDATED"
)

// Event defines the contract for all domain events.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// String returns the payload value under key, or "" when absent.
func (e BaseEvent) String(key string) string {
	if v, ok := e.Data[key].(string); ok {
		return v
	}
	return ""
}

type wireEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// Encode serializes an event with its type so consumers need not infer it from the subject.
func Encode(e Event) ([]byte, error) {
	return json.Marshal(wireEvent{
		Type:       e.EventType(),
		Data:       e.Payload(),
		OccurredAt: e.Timestamp(),
	})
}

func Decode(data []byte) (BaseEvent, error) {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return BaseEvent{}, fmt.Errorf("decode event: %w", err)
	}
	if w.Type == "" {
		return BaseEvent{}, fmt.Errorf("decode event: missing type")
	}
	return BaseEvent{Type: w.Type, Data: w.Data, OccurredAt: w.OccurredAt}, nil
}
