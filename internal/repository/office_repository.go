package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rexesezka/ServiceDesk1/internal/domain"
)

// OfficeRepository resolves office records from the directory.
type OfficeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Office, error)
}

type officeRepository struct {
	pool *pgxpool.Pool
}

// NewOfficeRepository instantiates the repository.
func NewOfficeRepository(pool *pgxpool.Pool) OfficeRepository {
	return &officeRepository{pool: pool}
}

func (r *officeRepository) GetByID(ctx context.Context, id int64) (*domain.Office, error) {
	const query = `
        SELECT id, parent_id, name, region, city, address, level
        FROM offices WHERE id=$1`
	var office domain.Office
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&office.ID,
		&office.ParentID,
		&office.Name,
		&office.Region,
		&office.City,
		&office.Address,
		&office.Level,
	); err != nil {
		return nil, err
	}
	return &office, nil
}
