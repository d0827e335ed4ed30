package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rexesezka/ServiceDesk1/internal/domain"
)

// TicketRepository encapsulates failure report persistence. Status and
// performer have dedicated partial updates so concurrent editors of the
// same ticket never clobber unrelated fields.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	Update(ctx context.Context, ticket *domain.Ticket) error
	UpdateStatus(ctx context.Context, id int64, status domain.TicketStatus) error
	UpdatePerformer(ctx context.Context, id int64, performerID *int64) error
	ListByRequester(ctx context.Context, requesterID int64) ([]domain.Ticket, error)
	ListByPerformer(ctx context.Context, performerID int64) ([]domain.Ticket, error)
	ListByStatuses(ctx context.Context, statuses []domain.TicketStatus) ([]domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, requester_id, category, urgency, description, office_id,
       office_location, employee_location, performer_id, status, created_at, updated_at`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (requester_id, category, urgency, description, office_id, office_location, employee_location, performer_id, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.RequesterID,
		ticket.Category,
		ticket.Urgency,
		ticket.Description,
		ticket.OfficeID,
		ticket.OfficeLocation,
		ticket.EmployeeLocation,
		ticket.PerformerID,
		ticket.Status,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE id=$1`, ticketColumns)
	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.RequesterID,
		&ticket.Category,
		&ticket.Urgency,
		&ticket.Description,
		&ticket.OfficeID,
		&ticket.OfficeLocation,
		&ticket.EmployeeLocation,
		&ticket.PerformerID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET category=$1, urgency=$2, description=$3, office_location=$4,
            employee_location=$5, performer_id=$6, status=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		ticket.Category,
		ticket.Urgency,
		ticket.Description,
		ticket.OfficeLocation,
		ticket.EmployeeLocation,
		ticket.PerformerID,
		ticket.Status,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, id int64, status domain.TicketStatus) error {
	const query = `UPDATE tickets SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) UpdatePerformer(ctx context.Context, id int64, performerID *int64) error {
	const query = `UPDATE tickets SET performer_id=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, performerID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) ListByRequester(ctx context.Context, requesterID int64) ([]domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE requester_id=$1 ORDER BY created_at DESC`, ticketColumns)
	rows, err := r.pool.Query(ctx, query, requesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) ListByPerformer(ctx context.Context, performerID int64) ([]domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE performer_id=$1 ORDER BY created_at DESC`, ticketColumns)
	rows, err := r.pool.Query(ctx, query, performerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) ListByStatuses(ctx context.Context, statuses []domain.TicketStatus) ([]domain.Ticket, error) {
	if len(statuses) == 0 {
		return []domain.Ticket{}, nil
	}
	placeholders := make([]string, len(statuses))
	args := make([]any, len(statuses))
	for i, status := range statuses {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = status
	}
	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE status IN (%s) ORDER BY updated_at DESC`,
		ticketColumns, strings.Join(placeholders, ","))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.RequesterID,
			&ticket.Category,
			&ticket.Urgency,
			&ticket.Description,
			&ticket.OfficeID,
			&ticket.OfficeLocation,
			&ticket.EmployeeLocation,
			&ticket.PerformerID,
			&ticket.Status,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
