package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Rexesezka/ServiceDesk1/internal/api/dto"
	"github.com/Rexesezka/ServiceDesk1/internal/auth"
	"github.com/Rexesezka/ServiceDesk1/internal/domain"
	"github.com/Rexesezka/ServiceDesk1/internal/service"
	apperrors "github.com/Rexesezka/ServiceDesk1/pkg/util"
)

// TicketsHandler manages failure report endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.IssueType == "" || req.Priority == "" || req.ProblemDescription == "" {
		return apperrors.NewValidationError("issueType, priority, problemDescription required", nil)
	}

	// The address field wins over the in-office location description.
	officeLocation := req.Address
	if officeLocation == "" {
		officeLocation = req.LocationDescription
	}

	input := service.TicketCreateInput{
		Category:         domain.FailureCategory(req.IssueType),
		Urgency:          domain.TicketUrgency(req.Priority),
		Description:      req.ProblemDescription,
		OfficeID:         req.OfficeID,
		OfficeLocation:   officeLocation,
		EmployeeLocation: req.EmployeeLocation,
	}
	ticket, err := h.service.CreateTicket(c.UserContext(), actor.ID, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// ListTickets GET /tickets. The i_am_performer filter switches from the
// requester's own reports to the ones assigned to them.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var tickets []domain.Ticket
	var err error
	if c.Query("filter") == "i_am_performer" {
		tickets, err = h.service.ListForPerformer(c.UserContext(), actor.ID)
	} else {
		tickets, err = h.service.ListForRequester(c.UserContext(), actor.ID)
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponses(tickets)})
}

// ListArchive GET /tickets/archive.
func (h *TicketsHandler) ListArchive(c *fiber.Ctx) error {
	tickets, err := h.service.ListArchive(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponses(tickets)})
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	ticketID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ticket, err := h.service.GetTicketFor(c.UserContext(), actor.ID, ticketID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// UpdateTicket PATCH /tickets/:id.
func (h *TicketsHandler) UpdateTicket(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	ticketID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.TicketUpdateInput{
		Description:      req.ProblemDescription,
		OfficeLocation:   req.LocationDescription,
		EmployeeLocation: req.EmployeeLocation,
	}
	if req.IssueType != nil {
		category := domain.FailureCategory(*req.IssueType)
		input.Category = &category
	}
	if req.Priority != nil {
		urgency := domain.TicketUrgency(*req.Priority)
		input.Urgency = &urgency
	}
	if req.PerformerID != nil {
		input.SetPerformer = true
		input.PerformerID = req.PerformerID
	} else if req.ClearPerformer {
		input.SetPerformer = true
	}

	ticket, err := h.service.UpdateTicket(c.UserContext(), actor.ID, ticketID, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// UpdateStatus PATCH /tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	ticketID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}

	ticket, err := h.service.ChangeStatus(c.UserContext(), actor.ID, ticketID, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// StaffLoad GET /staff/:id/load.
func (h *TicketsHandler) StaffLoad(c *fiber.Ctx) error {
	staffID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	load, err := h.service.StaffLoad(c.UserContext(), staffID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.LoadResponse{
		StaffID:     load.StaffID,
		OpenCount:   load.OpenCount,
		OpenTickets: load.OpenTickets,
	}})
}

func parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"param": param})
	}
	return id, nil
}

func ticketResponse(ticket *domain.Ticket) dto.TicketResponse {
	statusName, _ := domain.StatusLabel(ticket.Status)
	return dto.TicketResponse{
		ID:               ticket.ID,
		RequesterID:      ticket.RequesterID,
		IssueType:        ticket.Category,
		Priority:         ticket.Urgency,
		Description:      ticket.Description,
		OfficeID:         ticket.OfficeID,
		OfficeLocation:   ticket.OfficeLocation,
		EmployeeLocation: ticket.EmployeeLocation,
		PerformerID:      ticket.PerformerID,
		Status:           ticket.Status,
		StatusName:       statusName,
		CreatedAt:        ticket.CreatedAt,
		UpdatedAt:        ticket.UpdatedAt,
	}
}

func ticketResponses(tickets []domain.Ticket) []dto.TicketResponse {
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketResponse(&tickets[i]))
	}
	return items
}
