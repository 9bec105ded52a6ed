package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/DonovanMods/cfapi/apierr"
	"github.com/DonovanMods/cfapi/internal/params"
)

const (
	// DefaultBaseURL is the public CurseForge API host.
	DefaultBaseURL = "https://api.curseforge.com"

	maxErrorBody = 10 * 1024
)

// Requester is the capability the endpoint groups are written against.
// Both methods return the parsed JSON body with numbers kept as json.Number.
type Requester interface {
	Get(ctx context.Context, endpoint string, params map[string]any) (any, error)
	Post(ctx context.Context, endpoint string, body map[string]any) (any, error)
}

// Client is an authenticated session against one API host.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	logger     zerolog.Logger
}

var _ Requester = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for every request. Timeouts, TLS
// and pooling are configured there.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client that sends apiKey with every request.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	// Ensure baseURL doesn't have trailing slashes
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	return c
}

// BaseURL returns the host the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Logger returns the logger requests are traced with.
func (c *Client) Logger() zerolog.Logger {
	return c.logger
}

// URI builds the absolute URL of an endpoint. The API expects a trailing slash.
func (c *Client) URI(endpoint string) string {
	return c.baseURL + "/" + strings.Trim(endpoint, "/") + "/"
}

// Get issues a GET request with params as the query string. Absent
// parameters are not sent.
func (c *Client) Get(ctx context.Context, endpoint string, p map[string]any) (any, error) {
	uri := c.URI(endpoint)

	if vals := params.Filter(p); len(vals) > 0 {
		q, err := params.Query(vals)
		if err != nil {
			return nil, err
		}
		uri += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, endpoint)
}

// Post issues a POST request with body encoded as a JSON object. Absent
// fields are not sent.
func (c *Client) Post(ctx context.Context, endpoint string, body map[string]any) (any, error) {
	payload, err := json.Marshal(params.Filter(body))
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URI(endpoint), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, endpoint)
}

// do sends an authenticated request and parses the response body.
func (c *Client) do(req *http.Request, endpoint string) (result any, err error) {
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().
			Str("method", req.Method).
			Str("endpoint", endpoint).
			Err(err).
			Msg("CurseForge request failed")
		return nil, &apierr.TransportError{Method: req.Method, Endpoint: endpoint, Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing response body: %w", cerr)
		}
	}()

	c.logger.Debug().
		Str("method", req.Method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("CurseForge request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, upstreamError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierr.TransportError{Method: req.Method, Endpoint: endpoint, Err: fmt.Errorf("reading body: %w", err)}
	}
	return parseJSON(body)
}

// parseJSON decodes a response body into generic values, keeping numbers
// exact as json.Number.
func parseJSON(body []byte) (any, error) {
	if !json.Valid(body) {
		return nil, &apierr.SchemaValidationError{Err: apierr.ErrMalformedJSON}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &apierr.SchemaValidationError{Err: fmt.Errorf("%w: %v", apierr.ErrMalformedJSON, err)}
	}
	return v, nil
}

func upstreamError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) // Limit error body to 10KB
	return &apierr.UpstreamError{
		StatusCode: resp.StatusCode,
		Message:    errorMessage(body),
		Body:       body,
	}
}

// errorMessage extracts the service's own error text from a JSON error body.
func errorMessage(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, key := range []string{"errorMessage", "message", "error"} {
		if s, ok := payload[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
