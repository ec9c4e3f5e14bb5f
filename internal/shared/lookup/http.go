package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// HTTPOracle calls GET {baseURL}/api/url/{code} on the Creation Service.
type HTTPOracle struct {
	baseURL string
	client  *http.Client
}

// NewHTTPOracle builds an oracle for baseURL. The per-call deadline comes
// from the context, so client may be http.DefaultClient.
func NewHTTPOracle(baseURL string, client *http.Client) *HTTPOracle {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPOracle{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (o *HTTPOracle) Lookup(ctx context.Context, code string) (*Link, error) {
	endpoint := o.baseURL + "/api/url/" + url.PathEscape(code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusBadRequest:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, ErrNotFound
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("lookup %s: unexpected status %d", code, resp.StatusCode)
	}

	var link Link
	if err := json.NewDecoder(resp.Body).Decode(&link); err != nil {
		return nil, fmt.Errorf("decode lookup response: %w", err)
	}
	if link.OriginalURL == "" {
		return nil, fmt.Errorf("lookup %s: empty originalUrl", code)
	}
	return &link, nil
}
