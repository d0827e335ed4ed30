package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rexesezka/ServiceDesk1/internal/api/dto"
	"github.com/Rexesezka/ServiceDesk1/internal/auth"
	"github.com/Rexesezka/ServiceDesk1/internal/domain"
	"github.com/Rexesezka/ServiceDesk1/internal/service"
	apperrors "github.com/Rexesezka/ServiceDesk1/pkg/util"
)

// NotificationsHandler serves the employee notification feed.
type NotificationsHandler struct {
	service *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notificationService *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{service: notificationService}
}

// List GET /notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	notifications, err := h.service.ListForRecipient(c.UserContext(), actor.ID)
	if err != nil {
		return err
	}
	items := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, notificationResponse(&notifications[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UnreadCount GET /notifications/unread-count.
func (h *NotificationsHandler) UnreadCount(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	count, err := h.service.UnreadCount(c.UserContext(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.UnreadCountResponse{UnreadCount: count}})
}

// MarkRead PATCH /notifications/:id/read.
func (h *NotificationsHandler) MarkRead(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	notificationID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	notification, err := h.service.MarkRead(c.UserContext(), actor.ID, notificationID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": notificationResponse(notification)})
}

func notificationResponse(notification *domain.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        notification.ID,
		TicketID:  notification.TicketID,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}
