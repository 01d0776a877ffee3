// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const maxResponseBodySize = 1 << 20 // 1MB

// DefaultEndpoint is the Practicum homework statuses endpoint.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// Client queries the homework statuses endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	timeout    time.Duration
}

func NewClient(endpoint, token string, timeout time.Duration) *Client {
	return &Client{
		// no client timeout, the per-request timeout is applied through the context
		httpClient: &http.Client{},
		endpoint:   endpoint,
		token:      token,
		timeout:    timeout,
	}
}

// Fetch requests homework statuses changed since fromDate (unix seconds) and
// returns the decoded JSON body. The body is not validated here; see ValidateResponse.
func (c *Client) Fetch(ctx context.Context, fromDate int64) (any, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err)
	}
	query := reqURL.Query()
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: c.endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &ServerAccessError{Endpoint: c.endpoint, StatusCode: resp.StatusCode}
	}

	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodySize))
	decoder.UseNumber()
	var body any
	if err := decoder.Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	return body, nil
}
