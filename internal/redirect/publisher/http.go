// Package publisher delivers click events from the redirect service to the
// Analytics Service over HTTP, Dapr or NATS.
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go-shortlink/internal/redirect/usecase"
	"go-shortlink/internal/shared/events"
)

// HTTPPublisher posts clicks to the Analytics Service track endpoint.
type HTTPPublisher struct {
	endpoint string
	client   *http.Client
}

var _ usecase.ClickPublisher = (*HTTPPublisher)(nil)

// NewHTTPPublisher targets baseURL/api/track. Timeouts come from the caller's
// context, so client needs none of its own.
func NewHTTPPublisher(baseURL string, client *http.Client) *HTTPPublisher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPPublisher{
		endpoint: strings.TrimRight(baseURL, "/") + "/api/track",
		client:   client,
	}
}

func (p *HTTPPublisher) Publish(ctx context.Context, event events.ClickEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode click: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("post click: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("post click: analytics returned %d", resp.StatusCode)
	}
	return nil
}
