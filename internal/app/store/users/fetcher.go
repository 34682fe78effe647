// internal/app/store/users/fetcher.go
package userstore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/stratapulse/internal/domain/models"
	"go.uber.org/zap"
)

// Fetcher pulls the full user list from the upstream directory
// service over HTTP.
type Fetcher struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

func NewFetcher(url string, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

// directoryResponse is the envelope the directory service returns.
type directoryResponse struct {
	Users []models.User `json:"users"`
}

// Fetch retrieves the current user list from the directory service.
func (f *Fetcher) Fetch(ctx context.Context) ([]models.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch directory users: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory service returned %s", resp.Status)
	}

	var body directoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode directory response: %w", err)
	}
	return body.Users, nil
}

// Sync fetches the directory user list and replaces the store's
// working set with it. Local edits made since the previous sync are
// discarded, which is the intended behavior: the directory wins.
func (f *Fetcher) Sync(ctx context.Context, store *Store) (int, error) {
	users, err := f.Fetch(ctx)
	if err != nil {
		return 0, err
	}
	if err := store.Replace(users); err != nil {
		return 0, err
	}
	f.logger.Info("directory sync complete", zap.Int("users", len(users)))
	return len(users), nil
}
