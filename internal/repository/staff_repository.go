package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rexesezka/ServiceDesk1/internal/domain"
)

// StaffRepository is the engine's read view of the employee directory,
// plus the support-flag write used by the directory sync.
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	ListSupport(ctx context.Context) ([]domain.Staff, error)
	ListAll(ctx context.Context) ([]domain.Staff, error)
	SetSupportFlag(ctx context.Context, id int64, isSupport bool) error
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

const staffColumns = `id, username, first_name, last_name, middle_name, position, role, office_id, supervisor_id, is_support`

func (r *staffRepository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	const query = `SELECT ` + staffColumns + ` FROM staff WHERE id=$1`
	var staff domain.Staff
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&staff.ID,
		&staff.Username,
		&staff.FirstName,
		&staff.LastName,
		&staff.MiddleName,
		&staff.Position,
		&staff.Role,
		&staff.OfficeID,
		&staff.SupervisorID,
		&staff.IsSupport,
	); err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) ListSupport(ctx context.Context) ([]domain.Staff, error) {
	const query = `SELECT ` + staffColumns + ` FROM staff WHERE is_support ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStaff(rows)
}

func (r *staffRepository) ListAll(ctx context.Context) ([]domain.Staff, error) {
	const query = `SELECT ` + staffColumns + ` FROM staff ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStaff(rows)
}

func (r *staffRepository) SetSupportFlag(ctx context.Context, id int64, isSupport bool) error {
	const query = `UPDATE staff SET is_support=$1 WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, isSupport, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanStaff(rows pgx.Rows) ([]domain.Staff, error) {
	var result []domain.Staff
	for rows.Next() {
		var staff domain.Staff
		if err := rows.Scan(
			&staff.ID,
			&staff.Username,
			&staff.FirstName,
			&staff.LastName,
			&staff.MiddleName,
			&staff.Position,
			&staff.Role,
			&staff.OfficeID,
			&staff.SupervisorID,
			&staff.IsSupport,
		); err != nil {
			return nil, err
		}
		result = append(result, staff)
	}
	return result, rows.Err()
}
