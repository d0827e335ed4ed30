package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Rexesezka/ServiceDesk1/internal/service"
)

// StartNotificationWorker registers notification event handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}

// StartDirectorySync reconciles support flags once at startup and then
// on the configured interval until ctx is cancelled.
func StartDirectorySync(ctx context.Context, directory *service.DirectoryService, interval time.Duration, logger *zap.Logger) {
	if directory == nil {
		return
	}
	if _, err := directory.SyncSupportFlags(ctx); err != nil {
		logger.Warn("initial directory sync failed", zap.Error(err))
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := directory.SyncSupportFlags(ctx); err != nil {
					logger.Warn("directory sync failed", zap.Error(err))
				}
			}
		}
	}()
}
