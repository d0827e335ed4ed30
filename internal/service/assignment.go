package service

import (
	"github.com/Rexesezka/ServiceDesk1/internal/domain"
)

// SelectPerformer picks the support staff member to receive a new ticket.
//
// Candidates from the ticket's own office are preferred; only when none
// exist does the whole pool compete. Within the chosen subset the lowest
// current load wins, with ties going to the lowest staff id so repeated
// runs over the same state select the same performer. A nil result means
// no eligible staff exists and the ticket stays unassigned.
//
// The function is pure: committing the load increment is the caller's job.
// Urgency does not affect ranking yet; it is part of the contract so a
// future policy can use it without a signature change.
func SelectPerformer(officeID int64, urgency domain.TicketUrgency, candidates []domain.Staff, loads map[int64]int) *domain.Staff {
	if len(candidates) == 0 {
		return nil
	}

	pool := candidates
	sameOffice := make([]domain.Staff, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.OfficeID == officeID {
			sameOffice = append(sameOffice, candidate)
		}
	}
	if len(sameOffice) > 0 {
		pool = sameOffice
	}

	best := pool[0]
	for _, candidate := range pool[1:] {
		candidateLoad, bestLoad := loads[candidate.ID], loads[best.ID]
		if candidateLoad < bestLoad || (candidateLoad == bestLoad && candidate.ID < best.ID) {
			best = candidate
		}
	}
	return &best
}
