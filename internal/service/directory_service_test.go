package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rexesezka/ServiceDesk1/internal/domain"
)

func TestSyncSupportFlags(t *testing.T) {
	ctx := context.Background()
	staff := newFakeStaffRepo(
		domain.Staff{ID: 1, Role: "Бухгалтер"},
		domain.Staff{ID: 2, Role: "Специалист АХО"},
		domain.Staff{ID: 3, Role: "AHO lead", IsSupport: true},
		domain.Staff{ID: 4, Role: "Инженер", IsSupport: true},
	)
	directory := NewDirectoryService(staff, []string{"ахо", "aho"}, nil)

	changed, err := directory.SyncSupportFlags(ctx)
	require.NoError(t, err)
	// Staff 2 gains the flag, staff 4 loses it; 1 and 3 are already correct.
	assert.Equal(t, 2, changed)

	support, err := staff.ListSupport(ctx)
	require.NoError(t, err)
	require.Len(t, support, 2)
	assert.Equal(t, int64(2), support[0].ID)
	assert.Equal(t, int64(3), support[1].ID)
}

func TestSyncSupportFlagsIdempotent(t *testing.T) {
	ctx := context.Background()
	staff := newFakeStaffRepo(
		domain.Staff{ID: 1, Role: "Специалист АХО", IsSupport: true},
	)
	directory := NewDirectoryService(staff, []string{"ахо"}, nil)

	changed, err := directory.SyncSupportFlags(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, changed)
}
