package mailer

import (
	"fmt"
	"html"

	"portfolio-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendNewMessageAlert(toEmail, conversationID, preview string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	adminURL    string
	logger      logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderName, adminURL string, log logger.ILogger) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
		adminURL:    adminURL,
		logger:      log,
	}
}

func (s *emailService) SendNewMessageAlert(toEmail, conversationID, preview string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "New message on your portfolio chat")
	m.SetBody("text/html", renderAlert(conversationID, preview, s.adminURL))

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("MAILER", "Failed to send message alert", map[string]interface{}{
			"to":              toEmail,
			"conversation_id": conversationID,
			"error":           err.Error(),
		})
		return err
	}

	s.logger.Info("MAILER", "Message alert sent", map[string]interface{}{"to": toEmail, "conversation_id": conversationID})
	return nil
}

func renderAlert(conversationID, preview, adminURL string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>A visitor wrote to you</h2>
			<blockquote style="border-left: 3px solid #4CAF50; padding-left: 10px;">%s</blockquote>
			<p>Conversation: <code>%s</code></p>
			<a href="%s/cms?conversation=%s">Open the inbox</a>
		</div>
	`, html.EscapeString(preview), html.EscapeString(conversationID), adminURL, html.EscapeString(conversationID))
}
