package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Rexesezka/ServiceDesk1/internal/domain"
	"github.com/Rexesezka/ServiceDesk1/internal/repository"
)

// DirectoryService maintains the support capability flag on staff
// records. Role strings come from the upstream directory; the engine
// only ever consults the flag, so the substring match lives here and
// nowhere else.
type DirectoryService struct {
	staff   repository.StaffRepository
	markers []string
	logger  *zap.Logger
}

// NewDirectoryService creates the service.
func NewDirectoryService(staff repository.StaffRepository, markers []string, logger *zap.Logger) *DirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{staff: staff, markers: markers, logger: logger}
}

// SyncSupportFlags reconciles IsSupport with the configured role markers
// and returns the number of records changed.
func (d *DirectoryService) SyncSupportFlags(ctx context.Context) (int, error) {
	all, err := d.staff.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, member := range all {
		want := domain.IsSupportRole(member.Role, d.markers)
		if want == member.IsSupport {
			continue
		}
		if err := d.staff.SetSupportFlag(ctx, member.ID, want); err != nil {
			d.logger.Warn("support flag update failed", zap.Int64("staff_id", member.ID), zap.Error(err))
			continue
		}
		changed++
	}
	if changed > 0 {
		d.logger.Info("directory sync applied", zap.Int("changed", changed))
	}
	return changed, nil
}
