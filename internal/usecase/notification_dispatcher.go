package usecase

import (
	"context"
	"sync"
	"time"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/internal/domain/repository"
	"tourcatalog-service/pkg/logger"
	"tourcatalog-service/pkg/metrics"
)

// NotificationDispatcher renders catalog events and sends them on every channel
// in the background
type NotificationDispatcher struct {
	router    EventRouter
	notifiers []repository.NotificationRepository
	metrics   *metrics.Metrics
	logger    logger.Logger
	timeout   time.Duration
	wg        sync.WaitGroup
}

// NewNotificationDispatcher creates a new dispatcher
func NewNotificationDispatcher(router EventRouter, notifiers []repository.NotificationRepository, metrics *metrics.Metrics, logger logger.Logger) *NotificationDispatcher {
	return &NotificationDispatcher{
		router:    router,
		notifiers: notifiers,
		metrics:   metrics,
		logger:    logger.With("component", "notification_dispatcher"),
		timeout:   30 * time.Second,
	}
}

// Dispatch returns immediately; events without a template are dropped
func (d *NotificationDispatcher) Dispatch(ctx context.Context, event *entity.CatalogEvent) {
	if d == nil || d.router == nil || len(d.notifiers) == 0 {
		return
	}
	handler := d.router.GetHandler(event)
	if handler == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()

		notification, err := handler.Build(event)
		if err != nil {
			d.logger.Error("Failed to build notification", "action", event.Action, "entityId", event.EntityID, "error", err)
			return
		}

		for _, n := range d.notifiers {
			if err := n.Send(ctx, notification); err != nil {
				if d.metrics != nil {
					d.metrics.NotificationErrors.WithLabelValues(n.Channel()).Inc()
				}
				d.logger.Error("Failed to send notification",
					"channel", n.Channel(),
					"action", event.Action,
					"entityId", event.EntityID,
					"error", err)
				continue
			}
			d.logger.Info("Notification sent", "channel", n.Channel(), "kind", notification.Kind, "entityId", event.EntityID)
		}
	}()
}

// Wait blocks until in-flight notifications finish
func (d *NotificationDispatcher) Wait() {
	if d == nil {
		return
	}
	d.wg.Wait()
}
