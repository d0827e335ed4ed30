package ledger

import (
	"context"

	"github.com/Rexesezka/ServiceDesk1/internal/domain"
)

// Ledger tracks per-staff open ticket counts. The count is the
// authoritative workload figure consulted by performer selection; the
// open-ticket set is auxiliary display data.
//
// Implementations must make updates for a single staff member
// linearizable while keeping different staff members independent: two
// concurrent increments for the same performer must both land, and
// updates for distinct performers must not contend on a shared lock.
type Ledger interface {
	// Increment records one more open ticket for the staff member,
	// creating their load record on first assignment.
	Increment(ctx context.Context, staffID, ticketID int64) error
	// Decrement releases one load slot, clamped at zero. Missing load
	// records are a no-op, not an error.
	Decrement(ctx context.Context, staffID, ticketID int64) error
	// CurrentLoad returns the open ticket count, zero when no record
	// exists.
	CurrentLoad(ctx context.Context, staffID int64) (int, error)
	// Loads returns the open ticket counts for the given staff members.
	// Staff without a record are reported as zero.
	Loads(ctx context.Context, staffIDs []int64) (map[int64]int, error)
	// Record returns the full load record for display purposes.
	Record(ctx context.Context, staffID int64) (domain.Load, error)
}
