package navigate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Record is one raw record returned by the Navigate API. Schemas differ per
// endpoint and per campus configuration, so records stay opaque maps and
// callers pick out the fields they need.
type Record = map[string]any

// Client is a high-level client for the Navigate campus API. It is stateless
// per call and safe for concurrent use by multiple goroutines.
type Client struct {
	baseURL    string
	username   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures the Client during construction.
type Option func(*clientConfig) error

type clientConfig struct {
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
}

// New creates a new Client for the given Navigate instance. Every request is
// authenticated with HTTP basic auth using username and apiKey.
func New(baseURL, username, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("navigate: baseURL is required")
	}
	if username == "" || apiKey == "" {
		return nil, fmt.Errorf("navigate: username and api key are required")
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	cfg := &clientConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.timeout > 0 {
		httpClient.Timeout = cfg.timeout
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL:    baseURL,
		username:   username,
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) error {
		cfg.httpClient = c
		return nil
	}
}

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *clientConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithTimeout sets a timeout on the HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) error {
		cfg.timeout = d
		return nil
	}
}

// getJSON executes an authenticated GET against path and decodes the response
// into records. Error statuses are returned as *APIError.
func (c *Client) getJSON(ctx context.Context, path, operation string, query url.Values) ([]Record, error) {
	u := c.baseURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", operation, err)
	}
	req.SetBasicAuth(c.username, c.apiKey)

	c.logger.InfoContext(ctx, "API request", "operation", operation, "url", u)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: do request: %w", operation, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "API response", "operation", operation, "status", resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = resp.Status
		}
		return nil, newAPIError(operation, resp.StatusCode, msg)
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", operation, err)
	}
	return records, nil
}

// decodeRecords accepts the response shapes Navigate endpoints produce: a bare
// array of records, a single record object, or an object wrapping one array of
// records under a collection key (e.g. {"alerts": [...]}).
func decodeRecords(body []byte) ([]Record, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, nil
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	switch v := payload.(type) {
	case []any:
		return toRecords(v), nil
	case map[string]any:
		if list, ok := singleListField(v); ok {
			return toRecords(list), nil
		}
		return []Record{v}, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected payload type %T", payload)
	}
}

// singleListField returns the value of m's only key if that value is a list.
func singleListField(m map[string]any) ([]any, bool) {
	if len(m) != 1 {
		return nil, false
	}
	for _, v := range m {
		if list, ok := v.([]any); ok {
			return list, true
		}
	}
	return nil, false
}

func toRecords(list []any) []Record {
	records := make([]Record, 0, len(list))
	for _, item := range list {
		if rec, ok := item.(map[string]any); ok {
			records = append(records, rec)
		}
	}
	return records
}
