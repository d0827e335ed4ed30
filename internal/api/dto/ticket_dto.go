package dto

import (
	"time"

	"github.com/Rexesezka/ServiceDesk1/internal/domain"
)

// CreateTicketRequest mirrors the failure report form.
type CreateTicketRequest struct {
	IssueType           string `json:"issueType"`
	Priority            string `json:"priority"`
	ProblemDescription  string `json:"problemDescription"`
	Address             string `json:"address"`
	LocationDescription string `json:"locationDescription"`
	EmployeeLocation    string `json:"employeeLocation"`
	OfficeID            *int64 `json:"office_id"`
}

// UpdateTicketRequest carries a staff partial edit. ClearPerformer
// unassigns explicitly since JSON null and absent both decode to nil.
type UpdateTicketRequest struct {
	IssueType           *string `json:"issueType"`
	Priority            *string `json:"priority"`
	ProblemDescription  *string `json:"problemDescription"`
	LocationDescription *string `json:"locationDescription"`
	EmployeeLocation    *string `json:"employeeLocation"`
	PerformerID         *int64  `json:"performerId"`
	ClearPerformer      bool    `json:"clearPerformer"`
}

// UpdateStatusRequest carries a workflow transition.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// TicketResponse is the API view of a failure report.
type TicketResponse struct {
	ID               int64                  `json:"id"`
	RequesterID      int64                  `json:"requester_id"`
	IssueType        domain.FailureCategory `json:"issueType"`
	Priority         domain.TicketUrgency   `json:"priority"`
	Description      string                 `json:"description"`
	OfficeID         int64                  `json:"office_id"`
	OfficeLocation   string                 `json:"officeLocation"`
	EmployeeLocation string                 `json:"employeeLocation"`
	PerformerID      *int64                 `json:"performer_id"`
	Status           domain.TicketStatus    `json:"status"`
	StatusName       string                 `json:"statusName"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// LoadResponse is the display view of a staff load record.
type LoadResponse struct {
	StaffID     int64   `json:"staff_id"`
	OpenCount   int     `json:"open_count"`
	OpenTickets []int64 `json:"open_tickets"`
}
