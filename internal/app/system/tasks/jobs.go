// internal/app/system/tasks/jobs.go
package tasks

import (
	"context"
	"time"

	userstore "github.com/dalemusser/stratapulse/internal/app/store/users"
	"github.com/dalemusser/stratapulse/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// DirectorySyncJob creates a job that periodically refreshes the in-memory
// user working set from the upstream directory service. A failed sync leaves
// the current working set in place; the runner logs the error and retries on
// the next tick.
func DirectorySyncJob(fetcher *userstore.Fetcher, store *userstore.Store, interval time.Duration, logger *zap.Logger) Job {
	return Job{
		Name:     "directory-sync",
		Interval: interval,
		Timeout:  timeouts.Long(),
		Run: func(ctx context.Context) error {
			n, err := fetcher.Sync(ctx, store)
			if err != nil {
				return err
			}
			logger.Debug("directory sync refreshed working set",
				zap.Int("users", n))
			return nil
		},
	}
}
