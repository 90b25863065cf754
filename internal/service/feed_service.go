package service

import (
	"context"
	"encoding/json"
	"fmt"

	"portfolio-be/internal/pkg/logger"
	"portfolio-be/pkg/portfolio"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const FeedTopic = "portfolio.feed"

// TopicBroadcaster delivers an encoded envelope to realtime subscribers of topic.
type TopicBroadcaster interface {
	Publish(topic string, payload []byte)
}

type IFeedService interface {
	Publish(ctx context.Context, topic, eventType string, data interface{}) error
	Consume(ctx context.Context) error
}

type feedService struct {
	pubSub *gochannel.GoChannel
	hub    TopicBroadcaster
	logger logger.ILogger
}

func NewFeedService(pubSub *gochannel.GoChannel, hub TopicBroadcaster, log logger.ILogger) IFeedService {
	return &feedService{
		pubSub: pubSub,
		hub:    hub,
		logger: log,
	}
}

func (s *feedService) Publish(ctx context.Context, topic, eventType string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode feed data: %w", err)
	}
	payload, err := json.Marshal(portfolio.FeedEnvelope{Topic: topic, Type: eventType, Data: raw})
	if err != nil {
		return fmt.Errorf("encode feed envelope: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return s.pubSub.Publish(FeedTopic, msg)
}

// Consume forwards feed envelopes to the hub until ctx is cancelled.
func (s *feedService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, FeedTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.forward(msg)
		}
	}()
	return nil
}

func (s *feedService) forward(msg *message.Message) {
	var env portfolio.FeedEnvelope
	if err := json.Unmarshal(msg.Payload, &env); err != nil || env.Topic == "" {
		s.logger.Warn("FEED", "Dropping malformed feed message", map[string]interface{}{"uuid": msg.UUID})
		msg.Ack()
		return
	}

	s.hub.Publish(env.Topic, msg.Payload)
	msg.Ack()
}
