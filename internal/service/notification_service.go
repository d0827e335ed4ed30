package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Rexesezka/ServiceDesk1/internal/config"
	"github.com/Rexesezka/ServiceDesk1/internal/domain"
	"github.com/Rexesezka/ServiceDesk1/internal/events"
	"github.com/Rexesezka/ServiceDesk1/internal/repository"
	apperrors "github.com/Rexesezka/ServiceDesk1/pkg/util"
)

// NotificationService serves the employee notification feed and mirrors
// engine events to observability sinks.
type NotificationService struct {
	notifications repository.NotificationRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
	cfg           config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(notifications repository.NotificationRepository, dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		notifications: notifications,
		dispatcher:    dispatcher,
		logger:        logger,
		cfg:           cfg,
	}
}

// ListForRecipient returns the notification feed, newest first.
func (n *NotificationService) ListForRecipient(ctx context.Context, recipientID int64) ([]domain.Notification, error) {
	return n.notifications.ListByRecipient(ctx, recipientID)
}

// UnreadCount returns the number of unread notifications.
func (n *NotificationService) UnreadCount(ctx context.Context, recipientID int64) (int, error) {
	return n.notifications.CountUnread(ctx, recipientID)
}

// MarkRead flips a notification's read flag. Only the recipient may do
// so; marking an already-read notification is a no-op.
func (n *NotificationService) MarkRead(ctx context.Context, actorID, notificationID int64) (*domain.Notification, error) {
	notification, err := n.notifications.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("notification", map[string]any{"notification_id": notificationID})
		}
		return nil, err
	}
	if notification.RecipientID != actorID {
		return nil, apperrors.NewForbidden("access denied")
	}
	if notification.IsRead {
		return notification, nil
	}
	if err := n.notifications.MarkRead(ctx, notification.ID); err != nil {
		return nil, err
	}
	notification.IsRead = true
	return notification, nil
}

// RegisterHandlers subscribes to engine events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleEvent)
	n.dispatcher.Subscribe(events.EventTicketAssigned, n.handleEvent)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleEvent)
	n.dispatcher.Subscribe(events.EventTicketUpdated, n.handleEvent)
}

func (n *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.Int64("ticket_id", event.TicketID),
		zap.Any("payload", event.Payload))
	n.sendWebhookStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.Int64("ticket_id", event.TicketID),
		zap.String("event_type", string(event.Type)))
}
