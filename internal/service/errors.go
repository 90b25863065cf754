package service

import (
	"context"
	"errors"

	"portfolio-be/pkg/events"
	pktNats "portfolio-be/pkg/nats"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("user not authenticated")
	ErrForbidden          = errors.New("access denied")
)

// EventPublisher sends durable domain events; *nats.Publisher satisfies it.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// EventSubscriber attaches durable handlers; *nats.Subscriber satisfies it.
type EventSubscriber interface {
	Subscribe(ctx context.Context, subject, durableName string, handler pktNats.EventHandler) error
}
