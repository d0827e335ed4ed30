package domain

import "time"

// Notification is a message delivered to an employee about their ticket.
// Notifications are append-only; the only mutation is flipping IsRead.
type Notification struct {
	ID          int64
	RecipientID int64
	TicketID    *int64
	Message     string
	IsRead      bool
	CreatedAt   time.Time
}
