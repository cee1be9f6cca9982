package repository

import (
	"context"

	"tourcatalog-service/internal/domain/entity"
)

// NotificationRepository delivers outbound notifications over one channel
type NotificationRepository interface {
	Channel() string
	Send(ctx context.Context, notification *entity.Notification) error
}
