package nats

import (
	"context"
	"fmt"

	"portfolio-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"
)

// EventHandler processes one event; a non-nil error asks for redelivery.
type EventHandler func(ctx context.Context, event events.Event) error

type Subscriber struct {
	nc       *nats.Conn
	js       jetstream.JetStream
	logger   *zap.Logger
	consumes []jetstream.ConsumeContext
}

func NewSubscriber(url string, logger *zap.Logger) (*Subscriber, error) {
	nc, js, err := connect(url)
	if err != nil {
		return nil, err
	}
	return &Subscriber{nc: nc, js: js, logger: logger}, nil
}

// Subscribe attaches a durable consumer so events published while this
// process was down are still delivered.
func (s *Subscriber) Subscribe(ctx context.Context, subject, durableName string, handler EventHandler) error {
	consumer, err := s.js.CreateOrUpdateConsumer(ctx, StreamName, jetstream.ConsumerConfig{
		Durable:       durableName,
		FilterSubject: subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		MaxDeliver:    5,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	cc, err := consumer.Consume(func(msg jetstream.Msg) {
		event, err := events.Decode(msg.Data())
		if err != nil {
			// poison message, redelivery cannot fix it
			s.logger.Error("dropping undecodable event", zap.String("subject", msg.Subject()), zap.Error(err))
			_ = msg.Term()
			return
		}

		if err := handler(context.Background(), event); err != nil {
			s.logger.Warn("event handler failed", zap.String("subject", msg.Subject()), zap.Error(err))
			_ = msg.Nak()
			return
		}
		_ = msg.Ack()
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}
	s.consumes = append(s.consumes, cc)

	s.logger.Info("subscribed", zap.String("subject", subject), zap.String("durable", durableName))
	return nil
}

func (s *Subscriber) Close() {
	for _, cc := range s.consumes {
		cc.Stop()
	}
	if s.nc != nil {
		s.nc.Close()
	}
}
