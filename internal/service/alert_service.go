package service

import (
	"context"

	"portfolio-be/internal/pkg/logger"
	"portfolio-be/internal/pkg/mailer"
	"portfolio-be/internal/repository/memory"
	"portfolio-be/pkg/events"
	pktNats "portfolio-be/pkg/nats"
	"portfolio-be/pkg/portfolio"
)

const (
	alertDurableName = "owner-alert-worker"
	alertPreviewLen  = 200
)

type IAlertService interface {
	Start(ctx context.Context, sub EventSubscriber) error
	HandleEvent(ctx context.Context, event events.Event) error
}

// alertService emails the owner when a visitor writes, at most once per
// conversation per throttle window.
type alertService struct {
	mailer     mailer.IEmailService
	throttle   *memory.AlertThrottle
	ownerEmail string
	logger     logger.ILogger
}

func NewAlertService(m mailer.IEmailService, throttle *memory.AlertThrottle, ownerEmail string, log logger.ILogger) IAlertService {
	return &alertService{
		mailer:     m,
		throttle:   throttle,
		ownerEmail: ownerEmail,
		logger:     log,
	}
}

func (s *alertService) Start(ctx context.Context, sub EventSubscriber) error {
	if s.ownerEmail == "" {
		s.logger.Info("ALERT", "OWNER_ALERT_EMAIL not set, owner alerts disabled", nil)
		return nil
	}
	return sub.Subscribe(ctx, pktNats.Subject(events.ChatMessageCreated), alertDurableName, s.HandleEvent)
}

func (s *alertService) HandleEvent(ctx context.Context, event events.Event) error {
	if event.EventType() != events.ChatMessageCreated || s.ownerEmail == "" {
		return nil
	}

	payload := event.Payload()
	sender, _ := payload["sender"].(string)
	if sender != string(portfolio.SenderUser) {
		return nil
	}
	conversationID, _ := payload["conversation_id"].(string)
	text, _ := payload["message"].(string)

	if !s.throttle.Allow(conversationID) {
		s.logger.Debug("ALERT", "Alert throttled", map[string]interface{}{"conversation_id": conversationID})
		return nil
	}

	if err := s.mailer.SendNewMessageAlert(s.ownerEmail, conversationID, preview(text)); err != nil {
		s.throttle.Release(conversationID)
		return err
	}
	return nil
}

func preview(text string) string {
	r := []rune(text)
	if len(r) <= alertPreviewLen {
		return text
	}
	return string(r[:alertPreviewLen]) + "…"
}
