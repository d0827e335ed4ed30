package domain

import "time"

// TicketStatus is the frontend-facing status key of a failure report.
type TicketStatus string

const (
	TicketStatusNew              TicketStatus = "new"
	TicketStatusInProgress       TicketStatus = "in_progress"
	TicketStatusRevision         TicketStatus = "revision"
	TicketStatusCompleted        TicketStatus = "completed"
	TicketStatusAwaitingPurchase TicketStatus = "awaiting_purchase"
)

// TicketUrgency enumerates urgency keys accepted from the request form.
type TicketUrgency string

const (
	TicketUrgencyLow    TicketUrgency = "low"
	TicketUrgencyMedium TicketUrgency = "medium"
	TicketUrgencyHigh   TicketUrgency = "high"
	TicketUrgencyUrgent TicketUrgency = "urgent"
)

// FailureCategory enumerates failure category keys.
type FailureCategory string

const (
	FailureCategoryAccess    FailureCategory = "access"
	FailureCategoryHardware  FailureCategory = "hardware"
	FailureCategorySoftware  FailureCategory = "software"
	FailureCategoryNetwork   FailureCategory = "network"
	FailureCategoryFurniture FailureCategory = "furniture"
	FailureCategoryOther     FailureCategory = "other"
)

// Ticket is the aggregate for a filed failure report.
type Ticket struct {
	ID               int64
	RequesterID      int64
	Category         FailureCategory
	Urgency          TicketUrgency
	Description      string
	OfficeID         int64
	OfficeLocation   string
	EmployeeLocation string
	PerformerID      *int64
	Status           TicketStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsTerminal reports whether the status releases the performer's load slot.
func (s TicketStatus) IsTerminal() bool {
	return s == TicketStatusCompleted || s == TicketStatusAwaitingPurchase
}
