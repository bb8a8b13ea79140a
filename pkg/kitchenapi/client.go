package kitchenapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const fetchFailedMessage = "Failed to fetch kitchen details."

// Fetcher retrieves the menu of a single kitchen.
type Fetcher interface {
	FetchMenu(ctx context.Context, kitchenID string) ([]models.MenuItem, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) Fetcher {
	return NewClientWithHTTP(baseURL, &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)})
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client) Fetcher {
	return &client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// FetchMenu issues one GET against the kitchen API. Any transport failure, non-2xx
// status or malformed body is reported as a FetchError; an empty menu is not an error.
func (c *client) FetchMenu(ctx context.Context, kitchenID string) ([]models.MenuItem, error) {

	endpoint := fmt.Sprintf("%s/api/kitchen/%s", c.baseURL, url.PathEscape(kitchenID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.FetchError(fetchFailedMessage).WithError(err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("Kitchen API request failed", slog.String("kitchenId", kitchenID), slog.String("error", err.Error()))
		return nil, errors.FetchError(fetchFailedMessage).WithError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("Kitchen API returned an error status", slog.String("kitchenId", kitchenID), slog.Int("status", resp.StatusCode))
		return nil, errors.FetchError(fetchFailedMessage).WithDetail(fmt.Sprintf("kitchen API responded with status %d", resp.StatusCode))
	}

	var items []models.MenuItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, errors.FetchError(fetchFailedMessage).WithError(fmt.Errorf("failed to decode menu: %w", err))
	}

	if items == nil {
		items = []models.MenuItem{}
	}

	return items, nil
}
