package dto

import "time"

// NotificationResponse is the API view of a notification.
type NotificationResponse struct {
	ID        int64     `json:"notificationId"`
	TicketID  *int64    `json:"ticket_id"`
	Message   string    `json:"text"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// UnreadCountResponse reports the unread notification total.
type UnreadCountResponse struct {
	UnreadCount int `json:"unreadCount"`
}
