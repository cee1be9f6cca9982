package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/internal/domain/repository"
	"tourcatalog-service/pkg/logger"
)

// WhatsappRepository sends notifications through the WhatsApp gateway
type WhatsappRepository struct {
	logger      logger.Logger
	baseURL     string
	bearerToken string
	recipients  []string
	client      *http.Client
}

// NewWhatsappRepository creates a new WhatsApp notifier
func NewWhatsappRepository(baseURL, bearerToken string, recipients []string, logger logger.Logger) repository.NotificationRepository {
	return &WhatsappRepository{
		logger:      logger,
		baseURL:     baseURL,
		bearerToken: bearerToken,
		recipients:  recipients,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

type whatsappTextMessage struct {
	PhoneNumber string `json:"phoneNumber"`
	Type        string `json:"type"`
	Message     struct {
		Text string `json:"text"`
	} `json:"message"`
}

// Channel implements NotificationRepository
func (r *WhatsappRepository) Channel() string {
	return "whatsapp"
}

// Send posts one text message per recipient
func (r *WhatsappRepository) Send(ctx context.Context, notification *entity.Notification) error {
	url := fmt.Sprintf("%s/api/v1/messages/send", r.baseURL)

	for _, phone := range r.recipients {
		msg := whatsappTextMessage{PhoneNumber: phone, Type: "text"}
		msg.Message.Text = notification.Subject + "\n\n" + notification.Text

		jsonData, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("failed to marshal message: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+r.bearerToken)
		req.Header.Set("Content-Type", "application/json")

		resp, err := r.client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to send request: %w", err)
		}

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
			var errorBody map[string]interface{}
			json.NewDecoder(resp.Body).Decode(&errorBody)
			resp.Body.Close()
			return fmt.Errorf("WhatsApp service returned status %d: %v", resp.StatusCode, errorBody)
		}
		resp.Body.Close()

		r.logger.Debug("WhatsApp notification sent", "phone", phone, "kind", notification.Kind)
	}
	return nil
}
