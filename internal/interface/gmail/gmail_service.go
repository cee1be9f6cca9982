package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/internal/domain/repository"
	"tourcatalog-service/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailService sends catalog notifications through the Gmail API
type GmailService struct {
	gmailService *gmail.Service
	sender       string
	recipients   []string
	logger       logger.Logger
}

// NewGmailService creates a new Gmail notifier
func NewGmailService(ctx context.Context, tokenSource oauth2.TokenSource, sender string, recipients []string, logger logger.Logger) (repository.NotificationRepository, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &GmailService{
		gmailService: service,
		sender:       sender,
		recipients:   recipients,
		logger:       logger,
	}, nil
}

// Channel implements NotificationRepository
func (s *GmailService) Channel() string {
	return "email"
}

// Send delivers the notification as a plain text email to every recipient
func (s *GmailService) Send(ctx context.Context, notification *entity.Notification) error {
	if len(s.recipients) == 0 {
		return nil
	}

	raw := BuildMessage(s.sender, s.recipients, notification.Subject, notification.Text)
	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	sent, err := s.gmailService.Users.Messages.Send("me", msg).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debug("Email notification sent",
		"messageId", sent.Id,
		"kind", notification.Kind,
		"recipients", len(s.recipients))
	return nil
}

// BuildMessage renders an RFC 2822 message with a UTF-8 subject
func BuildMessage(from string, to []string, subject, body string) string {
	var b strings.Builder
	if from != "" {
		b.WriteString("From: " + from + "\r\n")
	}
	b.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.String()
}
