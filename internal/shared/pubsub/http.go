package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go-shortlink/internal/shared/events"
)

// HTTPPublisher delivers events straight to the Analytics Service event
// endpoints, wrapped in the same {"data": ...} envelope Dapr would send.
type HTTPPublisher struct {
	baseURL string
	client  *http.Client
}

var _ Publisher = (*HTTPPublisher)(nil)

// NewHTTPPublisher targets baseURL plus events.Route(topic). Timeouts come
// from the caller's context.
func NewHTTPPublisher(baseURL string, client *http.Client) *HTTPPublisher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPPublisher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (p *HTTPPublisher) Publish(ctx context.Context, topic string, event any) error {
	body, err := json.Marshal(struct {
		Data any `json:"data"`
	}{Data: event})
	if err != nil {
		return fmt.Errorf("http: encode %s: %w", topic, err)
	}

	endpoint := p.baseURL + events.Route(topic)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("http: publish %s: %w", topic, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("http: publish %s: %s returned %d", topic, endpoint, resp.StatusCode)
	}
	return nil
}
