package service

import (
	"context"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/Rexesezka/ServiceDesk1/internal/domain"
)

type fakeTicketRepo struct {
	mu      sync.Mutex
	nextID  int64
	tickets map[int64]*domain.Ticket

	failUpdatePerformer error
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[int64]*domain.Ticket)}
}

func (r *fakeTicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ticket.ID = r.nextID
	stored := *ticket
	r.tickets[ticket.ID] = &stored
	return nil
}

func (r *fakeTicketRepo) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeTicketRepo) Update(ctx context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[ticket.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *ticket
	r.tickets[ticket.ID] = &stored
	return nil
}

func (r *fakeTicketRepo) UpdateStatus(ctx context.Context, id int64, status domain.TicketStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tickets[id]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Status = status
	return nil
}

func (r *fakeTicketRepo) UpdatePerformer(ctx context.Context, id int64, performerID *int64) error {
	if r.failUpdatePerformer != nil {
		return r.failUpdatePerformer
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tickets[id]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.PerformerID = performerID
	return nil
}

func (r *fakeTicketRepo) ListByRequester(ctx context.Context, requesterID int64) ([]domain.Ticket, error) {
	return r.list(func(t *domain.Ticket) bool { return t.RequesterID == requesterID }), nil
}

func (r *fakeTicketRepo) ListByPerformer(ctx context.Context, performerID int64) ([]domain.Ticket, error) {
	return r.list(func(t *domain.Ticket) bool {
		return t.PerformerID != nil && *t.PerformerID == performerID
	}), nil
}

func (r *fakeTicketRepo) ListByStatuses(ctx context.Context, statuses []domain.TicketStatus) ([]domain.Ticket, error) {
	wanted := make(map[domain.TicketStatus]struct{}, len(statuses))
	for _, status := range statuses {
		wanted[status] = struct{}{}
	}
	return r.list(func(t *domain.Ticket) bool {
		_, ok := wanted[t.Status]
		return ok
	}), nil
}

func (r *fakeTicketRepo) list(keep func(*domain.Ticket) bool) []domain.Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Ticket
	for _, stored := range r.tickets {
		if keep(stored) {
			result = append(result, *stored)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

type fakeStaffRepo struct {
	mu    sync.Mutex
	staff map[int64]*domain.Staff
}

func newFakeStaffRepo(members ...domain.Staff) *fakeStaffRepo {
	repo := &fakeStaffRepo{staff: make(map[int64]*domain.Staff)}
	for _, member := range members {
		stored := member
		repo.staff[member.ID] = &stored
	}
	return repo
}

func (r *fakeStaffRepo) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.staff[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeStaffRepo) ListSupport(ctx context.Context) ([]domain.Staff, error) {
	return r.list(func(s *domain.Staff) bool { return s.IsSupport }), nil
}

func (r *fakeStaffRepo) ListAll(ctx context.Context) ([]domain.Staff, error) {
	return r.list(func(*domain.Staff) bool { return true }), nil
}

func (r *fakeStaffRepo) SetSupportFlag(ctx context.Context, id int64, isSupport bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.staff[id]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.IsSupport = isSupport
	return nil
}

func (r *fakeStaffRepo) list(keep func(*domain.Staff) bool) []domain.Staff {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Staff
	for _, stored := range r.staff {
		if keep(stored) {
			result = append(result, *stored)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

type fakeOfficeRepo struct {
	offices map[int64]*domain.Office
}

func newFakeOfficeRepo(offices ...domain.Office) *fakeOfficeRepo {
	repo := &fakeOfficeRepo{offices: make(map[int64]*domain.Office)}
	for _, office := range offices {
		stored := office
		repo.offices[office.ID] = &stored
	}
	return repo
}

func (r *fakeOfficeRepo) GetByID(ctx context.Context, id int64) (*domain.Office, error) {
	stored, ok := r.offices[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	nextID        int64
	notifications map[int64]*domain.Notification
	markReadCalls int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[int64]*domain.Notification)}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	notification.ID = r.nextID
	stored := *notification
	r.notifications[notification.ID] = &stored
	return nil
}

func (r *fakeNotificationRepo) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.notifications[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeNotificationRepo) ListByRecipient(ctx context.Context, recipientID int64) ([]domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Notification
	for _, stored := range r.notifications {
		if stored.RecipientID == recipientID {
			result = append(result, *stored)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, recipientID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, stored := range r.notifications {
		if stored.RecipientID == recipientID && !stored.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.notifications[id]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.IsRead = true
	r.markReadCalls++
	return nil
}
