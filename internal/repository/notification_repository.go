package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rexesezka/ServiceDesk1/internal/domain"
)

// NotificationRepository is the notification sink: rows are appended on
// ticket events and later only flipped to read.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	GetByID(ctx context.Context, id int64) (*domain.Notification, error)
	ListByRecipient(ctx context.Context, recipientID int64) ([]domain.Notification, error)
	CountUnread(ctx context.Context, recipientID int64) (int, error)
	MarkRead(ctx context.Context, id int64) error
}

type notificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository instantiates the repository.
func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{pool: pool}
}

func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	const query = `
        INSERT INTO notifications (recipient_id, ticket_id, message)
        VALUES ($1,$2,$3)
        RETURNING id, is_read, created_at`
	return r.pool.QueryRow(ctx, query,
		notification.RecipientID,
		notification.TicketID,
		notification.Message,
	).Scan(&notification.ID, &notification.IsRead, &notification.CreatedAt)
}

func (r *notificationRepository) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	const query = `
        SELECT id, recipient_id, ticket_id, message, is_read, created_at
        FROM notifications WHERE id=$1`
	var notification domain.Notification
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&notification.ID,
		&notification.RecipientID,
		&notification.TicketID,
		&notification.Message,
		&notification.IsRead,
		&notification.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID int64) ([]domain.Notification, error) {
	const query = `
        SELECT id, recipient_id, ticket_id, message, is_read, created_at
        FROM notifications WHERE recipient_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, recipientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Notification
	for rows.Next() {
		var notification domain.Notification
		if err := rows.Scan(
			&notification.ID,
			&notification.RecipientID,
			&notification.TicketID,
			&notification.Message,
			&notification.IsRead,
			&notification.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, notification)
	}
	return result, rows.Err()
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM notifications WHERE recipient_id=$1 AND NOT is_read`
	var count int
	if err := r.pool.QueryRow(ctx, query, recipientID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id int64) error {
	const query = `UPDATE notifications SET is_read=TRUE WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
