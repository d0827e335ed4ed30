package domain

// Load is a snapshot of one support staff member's workload. OpenCount is
// authoritative; OpenTickets is auxiliary display data and may lag.
type Load struct {
	StaffID     int64
	OpenCount   int
	OpenTickets []int64
}
