// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/stratapulse/internal/app/system/tasks"
	"github.com/dalemusser/stratapulse/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after backend dependencies are built, but before the
// HTTP handler is built and requests are served.
//
// This is the place for one-time initialization that depends on fully
// loaded configuration. Returning a non-nil error will abort startup and
// prevent the server from starting.
//
// Here we attempt an initial directory sync so the dashboard has data as
// soon as it comes up, then start the background task runner that keeps
// the working set fresh.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	// Initial sync is best effort. When the directory feed is this
	// service's own mock endpoint it cannot answer until the server is
	// listening, so a failure here is expected in dev; the scheduled
	// sync or a manual POST /api/sync fills the store later.
	syncCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()
	if n, err := deps.Fetcher.Sync(syncCtx, deps.Users); err != nil {
		logger.Warn("initial directory sync failed; starting with an empty working set",
			zap.Error(err))
	} else {
		logger.Info("initial directory sync complete", zap.Int("users", n))
	}

	if appCfg.SyncEnabled {
		startTaskRunner(appCfg, deps, logger)
	}

	return nil
}

// taskRunner is the global task runner instance, used for graceful shutdown.
var taskRunner *tasks.Runner

// startTaskRunner initializes and starts the background task runner.
func startTaskRunner(appCfg AppConfig, deps Deps, logger *zap.Logger) {
	taskRunner = tasks.New(logger)

	taskRunner.Register(tasks.DirectorySyncJob(deps.Fetcher, deps.Users, appCfg.SyncInterval, logger))

	taskRunner.Start()
}
