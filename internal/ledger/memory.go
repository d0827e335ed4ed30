package ledger

import (
	"context"
	"sort"
	"sync"

	"github.com/Rexesezka/ServiceDesk1/internal/domain"
)

// memoryLedger keeps load records in process memory. The registry mutex
// only guards the record map; each record carries its own lock so staff
// members never contend with each other.
type memoryLedger struct {
	mu      sync.RWMutex
	records map[int64]*memoryRecord
}

type memoryRecord struct {
	mu      sync.Mutex
	count   int
	tickets map[int64]struct{}
}

// NewMemory creates an in-process ledger. It backs tests and deployments
// without a reachable Redis.
func NewMemory() Ledger {
	return &memoryLedger{records: make(map[int64]*memoryRecord)}
}

func (l *memoryLedger) record(staffID int64, create bool) *memoryRecord {
	l.mu.RLock()
	rec := l.records[staffID]
	l.mu.RUnlock()
	if rec != nil || !create {
		return rec
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if rec = l.records[staffID]; rec == nil {
		rec = &memoryRecord{tickets: make(map[int64]struct{})}
		l.records[staffID] = rec
	}
	return rec
}

func (l *memoryLedger) Increment(ctx context.Context, staffID, ticketID int64) error {
	rec := l.record(staffID, true)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.count++
	rec.tickets[ticketID] = struct{}{}
	return nil
}

func (l *memoryLedger) Decrement(ctx context.Context, staffID, ticketID int64) error {
	rec := l.record(staffID, false)
	if rec == nil {
		return nil
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.count > 0 {
		rec.count--
	}
	delete(rec.tickets, ticketID)
	return nil
}

func (l *memoryLedger) CurrentLoad(ctx context.Context, staffID int64) (int, error) {
	rec := l.record(staffID, false)
	if rec == nil {
		return 0, nil
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.count, nil
}

func (l *memoryLedger) Loads(ctx context.Context, staffIDs []int64) (map[int64]int, error) {
	loads := make(map[int64]int, len(staffIDs))
	for _, id := range staffIDs {
		count, err := l.CurrentLoad(ctx, id)
		if err != nil {
			return nil, err
		}
		loads[id] = count
	}
	return loads, nil
}

func (l *memoryLedger) Record(ctx context.Context, staffID int64) (domain.Load, error) {
	load := domain.Load{StaffID: staffID}
	rec := l.record(staffID, false)
	if rec == nil {
		return load, nil
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	load.OpenCount = rec.count
	load.OpenTickets = make([]int64, 0, len(rec.tickets))
	for id := range rec.tickets {
		load.OpenTickets = append(load.OpenTickets, id)
	}
	sort.Slice(load.OpenTickets, func(i, j int) bool { return load.OpenTickets[i] < load.OpenTickets[j] })
	return load, nil
}
