package events

import (
	"time"

	"github.com/Rexesezka/ServiceDesk1/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketAssigned      EventType = "ticket_assigned"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketUpdated       EventType = "ticket_updated"
)

// Event represents a domain event emitted by services. ActorID is zero
// for system-initiated events such as auto-assignment.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  int64       `json:"ticket_id"`
	ActorID   int64       `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	RequesterID int64                  `json:"requester_id"`
	OfficeID    int64                  `json:"office_id"`
	Category    domain.FailureCategory `json:"category"`
	Urgency     domain.TicketUrgency   `json:"urgency"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	PerformerID *int64 `json:"performer_id,omitempty"`
	OfficeID    int64  `json:"office_id"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketUpdatedPayload payload.
type TicketUpdatedPayload struct {
	Fields []string `json:"fields"`
}
