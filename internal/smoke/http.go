package smoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// HTTPClient wraps http.Client with timeout and the configured response encoding.
type HTTPClient struct {
	client  *http.Client
	baseURL string
	format  string
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(cfg *Config) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		format:  cfg.Format,
	}
}

// Get fetches path and decodes the body into v when the status matches want.
// The response encoding follows the client's format.
func (c *HTTPClient) Get(ctx context.Context, path string, query url.Values, want int, v any) error {
	if c.format == FormatMsgPack {
		if query == nil {
			query = url.Values{}
		}
		query.Set("format", FormatMsgPack)
	}
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.format == FormatMsgPack {
		req.Header.Set("Accept", contentTypeMsgPack)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != want {
		return fmt.Errorf("%w: GET %s returned %d, want %d", ErrUnexpectedStatus, path, resp.StatusCode, want)
	}
	if v == nil {
		return nil
	}
	if err := c.decode(body, v); err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrInvalidResponse, path, err)
	}
	return nil
}

func (c *HTTPClient) decode(data []byte, v any) error {
	if c.format == FormatMsgPack {
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		dec.SetCustomStructTag("json")
		return dec.Decode(v)
	}
	return json.Unmarshal(data, v)
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// timed runs fn and returns its error along with the elapsed time.
func timed(fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	return time.Since(start), err
}
