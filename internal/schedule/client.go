package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client resolves schedules from a remote directory service over REST.
// Deployments without a directory use the Postgres Repository instead.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient creates a directory client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// GetScheduleDetails fetches one slot; a 404 maps to (nil, nil).
func (c *Client) GetScheduleDetails(ctx context.Context, scheduleID string) (*Details, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/schedules/"+scheduleID, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("schedule directory request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("schedule directory status %d: %s", resp.StatusCode, string(body))
	}

	var d Details
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return nil, fmt.Errorf("schedule directory decode: %w", err)
	}
	return &d, nil
}

// Health checks directory availability.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("schedule directory unhealthy: status %d", resp.StatusCode)
	}
	return nil
}
