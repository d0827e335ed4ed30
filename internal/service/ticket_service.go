package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Rexesezka/ServiceDesk1/internal/domain"
	"github.com/Rexesezka/ServiceDesk1/internal/events"
	"github.com/Rexesezka/ServiceDesk1/internal/ledger"
	"github.com/Rexesezka/ServiceDesk1/internal/repository"
	apperrors "github.com/Rexesezka/ServiceDesk1/pkg/util"
)

// TicketService coordinates ticket creation, auto-assignment and the
// status workflow. The ticket record is the source of truth: once a
// status or performer mutation is committed, ledger and notification
// side effects are attempted best-effort and never rolled back.
type TicketService struct {
	tickets       repository.TicketRepository
	staff         repository.StaffRepository
	offices       repository.OfficeRepository
	notifications repository.NotificationRepository
	loads         ledger.Ledger
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo       repository.TicketRepository
	StaffRepo        repository.StaffRepository
	OfficeRepo       repository.OfficeRepository
	NotificationRepo repository.NotificationRepository
	Ledger           ledger.Ledger
	Dispatcher       events.Dispatcher
	Logger           *zap.Logger
}

// TicketCreateInput describes a new failure report.
type TicketCreateInput struct {
	Category         domain.FailureCategory
	Urgency          domain.TicketUrgency
	Description      string
	OfficeID         *int64
	OfficeLocation   string
	EmployeeLocation string
}

// TicketUpdateInput describes a staff partial edit. Nil fields are left
// untouched; SetPerformer distinguishes "reassign to nobody" from "keep".
type TicketUpdateInput struct {
	Category         *domain.FailureCategory
	Urgency          *domain.TicketUrgency
	Description      *string
	OfficeLocation   *string
	EmployeeLocation *string
	SetPerformer     bool
	PerformerID      *int64
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{
		tickets:       deps.TicketRepo,
		staff:         deps.StaffRepo,
		offices:       deps.OfficeRepo,
		notifications: deps.NotificationRepo,
		loads:         deps.Ledger,
		dispatcher:    deps.Dispatcher,
		logger:        logger,
	}
}

// CreateTicket files a failure report, auto-assigns a performer when one
// is eligible and notifies the requester. A missing performer is a valid
// outcome, not an error.
func (s *TicketService) CreateTicket(ctx context.Context, requesterID int64, input TicketCreateInput) (*domain.Ticket, error) {
	requester, err := s.staff.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("staff", map[string]any{"staff_id": requesterID})
		}
		return nil, err
	}

	if _, ok := domain.CategoryLabel(input.Category); !ok {
		return nil, apperrors.NewValidationError("unknown failure category", map[string]any{"category": input.Category})
	}
	if _, ok := domain.UrgencyLabel(input.Urgency); !ok {
		return nil, apperrors.NewValidationError("unknown urgency", map[string]any{"urgency": input.Urgency})
	}
	description := strings.TrimSpace(input.Description)
	officeLocation := strings.TrimSpace(input.OfficeLocation)
	if description == "" || officeLocation == "" {
		return nil, apperrors.NewValidationError("description and office location required", nil)
	}

	office, err := s.resolveOffice(ctx, input.OfficeID, requester)
	if err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		RequesterID:      requester.ID,
		Category:         input.Category,
		Urgency:          input.Urgency,
		Description:      description,
		OfficeID:         office.ID,
		OfficeLocation:   officeLocation,
		EmployeeLocation: strings.TrimSpace(input.EmployeeLocation),
		Status:           domain.TicketStatusNew,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		ActorID:  requester.ID,
		Payload: events.TicketCreatedPayload{
			RequesterID: requester.ID,
			OfficeID:    office.ID,
			Category:    ticket.Category,
			Urgency:     ticket.Urgency,
		},
	})

	// The ticket is durable from here on: assignment and notification
	// failures are logged, never rolled back.
	s.autoAssign(ctx, ticket, office.ID)
	s.notify(ctx, requester.ID, ticket.ID, domain.CreationMessage(ticket.ID))

	return ticket, nil
}

// ChangeStatus applies a status transition requested by support staff.
// Any status may be set to any other; the engine enforces consequences,
// not a transition table: reaching a terminal status releases the
// performer's load slot, and the requester is notified only when the
// status actually changed.
func (s *TicketService) ChangeStatus(ctx context.Context, actorID, ticketID int64, statusKey string) (*domain.Ticket, error) {
	if err := s.requireSupport(ctx, actorID); err != nil {
		return nil, err
	}

	newStatus := domain.TicketStatus(statusKey)
	if _, ok := domain.StatusLabel(newStatus); !ok {
		return nil, apperrors.NewInvalidStatus(statusKey)
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, err
	}

	oldStatus := ticket.Status
	if err := s.tickets.UpdateStatus(ctx, ticket.ID, newStatus); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, err
	}
	ticket.Status = newStatus
	ticket.UpdatedAt = time.Now()

	// Decrement fires on every arrival at a terminal status, including
	// terminal-to-terminal repeats; the ledger clamps at zero.
	if newStatus.IsTerminal() && ticket.PerformerID != nil {
		if err := s.loads.Decrement(ctx, *ticket.PerformerID, ticket.ID); err != nil {
			s.logger.Warn("load decrement failed",
				zap.Int64("ticket_id", ticket.ID),
				zap.Int64("performer_id", *ticket.PerformerID),
				zap.Error(err))
		}
	}

	if oldStatus != newStatus {
		s.notify(ctx, ticket.RequesterID, ticket.ID, domain.StatusMessage(newStatus, ticket.ID))
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		ActorID:  actorID,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return ticket, nil
}

// UpdateTicket applies a staff partial edit. Reassigning the performer of
// an open ticket moves the load slot between the two ledgers.
func (s *TicketService) UpdateTicket(ctx context.Context, actorID, ticketID int64, input TicketUpdateInput) (*domain.Ticket, error) {
	if err := s.requireSupport(ctx, actorID); err != nil {
		return nil, err
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, err
	}

	fields := []string{}
	if input.Category != nil {
		if _, ok := domain.CategoryLabel(*input.Category); !ok {
			return nil, apperrors.NewValidationError("unknown failure category", map[string]any{"category": *input.Category})
		}
		ticket.Category = *input.Category
		fields = append(fields, "category")
	}
	if input.Urgency != nil {
		if _, ok := domain.UrgencyLabel(*input.Urgency); !ok {
			return nil, apperrors.NewValidationError("unknown urgency", map[string]any{"urgency": *input.Urgency})
		}
		ticket.Urgency = *input.Urgency
		fields = append(fields, "urgency")
	}
	if input.Description != nil {
		ticket.Description = strings.TrimSpace(*input.Description)
		fields = append(fields, "description")
	}
	if input.OfficeLocation != nil {
		ticket.OfficeLocation = strings.TrimSpace(*input.OfficeLocation)
		fields = append(fields, "office_location")
	}
	if input.EmployeeLocation != nil {
		ticket.EmployeeLocation = strings.TrimSpace(*input.EmployeeLocation)
		fields = append(fields, "employee_location")
	}

	oldPerformer := ticket.PerformerID
	if input.SetPerformer {
		if input.PerformerID != nil {
			performer, err := s.staff.GetByID(ctx, *input.PerformerID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return nil, apperrors.NewNotFound("staff", map[string]any{"staff_id": *input.PerformerID})
				}
				return nil, err
			}
			if !performer.IsSupport {
				return nil, apperrors.NewConflict("performer is not support staff", map[string]any{"staff_id": performer.ID})
			}
		}
		ticket.PerformerID = input.PerformerID
		fields = append(fields, "performer")
	}

	if len(fields) == 0 {
		return ticket, nil
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, err
	}

	if input.SetPerformer && !ticket.Status.IsTerminal() && !samePerformer(oldPerformer, ticket.PerformerID) {
		s.moveLoad(ctx, ticket.ID, oldPerformer, ticket.PerformerID)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketUpdated,
		TicketID: ticket.ID,
		ActorID:  actorID,
		Payload:  events.TicketUpdatedPayload{Fields: fields},
	})
	return ticket, nil
}

// GetTicketFor fetches a ticket for its requester or any support staff.
func (s *TicketService) GetTicketFor(ctx context.Context, actorID, ticketID int64) (*domain.Ticket, error) {
	actor, err := s.staff.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("staff", map[string]any{"staff_id": actorID})
		}
		return nil, err
	}
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, err
	}
	if ticket.RequesterID != actor.ID && !actor.IsSupport {
		return nil, apperrors.NewForbidden("access denied")
	}
	return ticket, nil
}

// ListForRequester returns tickets filed by the given employee.
func (s *TicketService) ListForRequester(ctx context.Context, requesterID int64) ([]domain.Ticket, error) {
	return s.tickets.ListByRequester(ctx, requesterID)
}

// ListForPerformer returns tickets assigned to the given support staff.
func (s *TicketService) ListForPerformer(ctx context.Context, performerID int64) ([]domain.Ticket, error) {
	return s.tickets.ListByPerformer(ctx, performerID)
}

// ListArchive returns tickets in a terminal status.
func (s *TicketService) ListArchive(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.ListByStatuses(ctx, []domain.TicketStatus{
		domain.TicketStatusCompleted,
		domain.TicketStatusAwaitingPurchase,
	})
}

// StaffLoad exposes a support staff member's load record for display.
func (s *TicketService) StaffLoad(ctx context.Context, staffID int64) (domain.Load, error) {
	return s.loads.Record(ctx, staffID)
}

func (s *TicketService) resolveOffice(ctx context.Context, officeID *int64, requester *domain.Staff) (*domain.Office, error) {
	if officeID != nil {
		office, err := s.offices.GetByID(ctx, *officeID)
		if err == nil {
			return office, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		// Unknown explicit office falls back to the requester's office.
	}
	if requester.OfficeID != 0 {
		office, err := s.offices.GetByID(ctx, requester.OfficeID)
		if err == nil {
			return office, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
	}
	return nil, apperrors.NewMissingOffice()
}

// autoAssign selects a performer and commits assignment plus ledger
// increment. Every failure here leaves the ticket valid but unassigned.
func (s *TicketService) autoAssign(ctx context.Context, ticket *domain.Ticket, officeID int64) {
	pool, err := s.staff.ListSupport(ctx)
	if err != nil {
		s.logger.Warn("support staff lookup failed", zap.Int64("ticket_id", ticket.ID), zap.Error(err))
		return
	}
	if len(pool) == 0 {
		return
	}

	ids := make([]int64, len(pool))
	for i, candidate := range pool {
		ids[i] = candidate.ID
	}
	loads, err := s.loads.Loads(ctx, ids)
	if err != nil {
		s.logger.Warn("load lookup failed", zap.Int64("ticket_id", ticket.ID), zap.Error(err))
		return
	}

	performer := SelectPerformer(officeID, ticket.Urgency, pool, loads)
	if performer == nil {
		return
	}

	if err := s.tickets.UpdatePerformer(ctx, ticket.ID, &performer.ID); err != nil {
		s.logger.Warn("performer assignment failed",
			zap.Int64("ticket_id", ticket.ID),
			zap.Int64("performer_id", performer.ID),
			zap.Error(err))
		return
	}
	ticket.PerformerID = &performer.ID

	if err := s.loads.Increment(ctx, performer.ID, ticket.ID); err != nil {
		s.logger.Warn("load increment failed",
			zap.Int64("ticket_id", ticket.ID),
			zap.Int64("performer_id", performer.ID),
			zap.Error(err))
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: ticket.ID,
		Payload: events.TicketAssignedPayload{
			PerformerID: ticket.PerformerID,
			OfficeID:    officeID,
		},
	})
}

func (s *TicketService) moveLoad(ctx context.Context, ticketID int64, from, to *int64) {
	if from != nil {
		if err := s.loads.Decrement(ctx, *from, ticketID); err != nil {
			s.logger.Warn("load decrement failed",
				zap.Int64("ticket_id", ticketID),
				zap.Int64("performer_id", *from),
				zap.Error(err))
		}
	}
	if to != nil {
		if err := s.loads.Increment(ctx, *to, ticketID); err != nil {
			s.logger.Warn("load increment failed",
				zap.Int64("ticket_id", ticketID),
				zap.Int64("performer_id", *to),
				zap.Error(err))
		}
	}
}

func (s *TicketService) requireSupport(ctx context.Context, actorID int64) error {
	actor, err := s.staff.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("staff", map[string]any{"staff_id": actorID})
		}
		return err
	}
	if !actor.IsSupport {
		return apperrors.NewForbidden("support staff role required")
	}
	return nil
}

func (s *TicketService) notify(ctx context.Context, recipientID, ticketID int64, message string) {
	notification := &domain.Notification{
		RecipientID: recipientID,
		TicketID:    &ticketID,
		Message:     message,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		s.logger.Warn("notification emit failed",
			zap.Int64("ticket_id", ticketID),
			zap.Int64("recipient_id", recipientID),
			zap.Error(err))
	}
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func samePerformer(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
