// Package remote pulls export snapshots from another running instance.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"eventbooking/internal/domain"
)

// ExportPath is the route serving the snapshot on the source instance.
const ExportPath = "/api/data/export"

type exportEnvelope struct {
	Success bool                   `json:"success"`
	Data    *domain.DatabaseExport `json:"data"`
	Message string                 `json:"message"`
}

type httpFetcher struct {
	client *http.Client
	token  string
}

// NewHTTPFetcher returns a fetcher calling the export route of baseURL. A non-empty token is sent as a bearer token.
func NewHTTPFetcher(client *http.Client, token string) domain.SnapshotFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpFetcher{client: client, token: token}
}

func (f *httpFetcher) Fetch(ctx context.Context, baseURL string) (*domain.DatabaseExport, error) {
	url := strings.TrimRight(baseURL, "/") + ExportPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("snapshot source returned status: %d", resp.StatusCode)
	}

	var env exportEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if !env.Success || env.Data == nil {
		return nil, fmt.Errorf("snapshot source reported failure: %s", env.Message)
	}
	return env.Data, nil
}
