package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rexesezka/ServiceDesk1/internal/domain"
)

func TestSelectPerformerEmptyPool(t *testing.T) {
	result := SelectPerformer(10, domain.TicketUrgencyHigh, nil, nil)
	assert.Nil(t, result)
}

func TestSelectPerformerPrefersSameOffice(t *testing.T) {
	candidates := []domain.Staff{
		{ID: 1, OfficeID: 20},
		{ID: 2, OfficeID: 10},
	}
	loads := map[int64]int{1: 0, 2: 7}

	result := SelectPerformer(10, domain.TicketUrgencyMedium, candidates, loads)
	require.NotNil(t, result)
	assert.Equal(t, int64(2), result.ID)
}

func TestSelectPerformerFallsBackToFullPool(t *testing.T) {
	candidates := []domain.Staff{
		{ID: 1, OfficeID: 20},
		{ID: 2, OfficeID: 30},
	}
	loads := map[int64]int{1: 3, 2: 1}

	result := SelectPerformer(10, domain.TicketUrgencyMedium, candidates, loads)
	require.NotNil(t, result)
	assert.Equal(t, int64(2), result.ID)
}

func TestSelectPerformerPicksLowestLoad(t *testing.T) {
	candidates := []domain.Staff{
		{ID: 1, OfficeID: 10},
		{ID: 2, OfficeID: 10},
		{ID: 3, OfficeID: 10},
	}
	loads := map[int64]int{1: 2, 2: 5, 3: 1}

	result := SelectPerformer(10, domain.TicketUrgencyLow, candidates, loads)
	require.NotNil(t, result)
	assert.Equal(t, int64(3), result.ID)
}

func TestSelectPerformerTieBreaksOnLowestID(t *testing.T) {
	candidates := []domain.Staff{
		{ID: 9, OfficeID: 10},
		{ID: 4, OfficeID: 10},
		{ID: 7, OfficeID: 10},
	}
	loads := map[int64]int{9: 2, 4: 2, 7: 2}

	result := SelectPerformer(10, domain.TicketUrgencyUrgent, candidates, loads)
	require.NotNil(t, result)
	assert.Equal(t, int64(4), result.ID)
}

func TestSelectPerformerMissingLoadCountsAsZero(t *testing.T) {
	candidates := []domain.Staff{
		{ID: 1, OfficeID: 10},
		{ID: 2, OfficeID: 10},
	}
	loads := map[int64]int{1: 1}

	result := SelectPerformer(10, domain.TicketUrgencyLow, candidates, loads)
	require.NotNil(t, result)
	assert.Equal(t, int64(2), result.ID)
}

func TestSelectPerformerIsDeterministic(t *testing.T) {
	candidates := []domain.Staff{
		{ID: 5, OfficeID: 10},
		{ID: 6, OfficeID: 10},
	}
	loads := map[int64]int{5: 1, 6: 1}

	first := SelectPerformer(10, domain.TicketUrgencyMedium, candidates, loads)
	second := SelectPerformer(10, domain.TicketUrgencyMedium, candidates, loads)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
}
