// internal/app/bootstrap/deps.go
package bootstrap

import (
	"context"

	userstore "github.com/dalemusser/stratapulse/internal/app/store/users"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Deps holds the backend dependencies for this WAFFLE app.
//
// This struct is created in ConnectDB and passed to subsequent lifecycle
// hooks: Startup, BuildHandler, and Shutdown. The service keeps its
// working set of directory users in memory, so there is no database
// client here; the store and the fetcher that refreshes it are the
// whole backend.
type Deps struct {
	// Users is the in-memory working set of directory users.
	Users *userstore.Store

	// Fetcher pulls the user directory feed and replaces the working set.
	Fetcher *userstore.Fetcher
}

// ConnectDB builds the backend dependencies.
//
// WAFFLE calls this after configuration is loaded but before Startup.
// For this service there is nothing to connect to: the working set is
// an empty in-memory store that Startup fills from the directory feed.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	store := userstore.New()
	fetcher := userstore.NewFetcher(appCfg.DirectoryURL, logger)

	logger.Info("initialized in-memory user store",
		zap.String("directory_url", appCfg.DirectoryURL),
	)

	return Deps{
		Users:   store,
		Fetcher: fetcher,
	}, nil
}
