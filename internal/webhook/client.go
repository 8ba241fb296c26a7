package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/askhookio/askhook/internal/answer"
)

// DefaultTimeout bounds a single attempt when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// retryBackoff is the base delay between attempts; retry i sleeps
// (i+1)*retryBackoff before the next try.
const retryBackoff = 200 * time.Millisecond

// Config holds the static settings for a webhook client.
type Config struct {
	// Endpoint is the URL queries are POSTed to.
	Endpoint string
	// Timeout bounds each attempt. Zero means DefaultTimeout.
	Timeout time.Duration
	// MaxRetries is the number of additional attempts after a transient
	// (timeout or transport) failure. Zero keeps single-attempt behavior.
	// Status and decode failures are never retried.
	MaxRetries int
	// UserAgent optionally overrides the User-Agent header.
	UserAgent string
}

// Client sends a single JSON query to the configured endpoint and decodes the
// reply. Safe for concurrent use.
type Client struct {
	cfg        Config
	HTTPClient *http.Client
}

func New(cfg Config) *Client {
	return &Client{cfg: cfg}
}

func (c *Client) Name() string { return "webhook" }

// Endpoint exposes the configured URL for diagnostics.
func (c *Client) Endpoint() string { return c.cfg.Endpoint }

// request is built fresh per submission and discarded after send.
type request struct {
	Query     string `json:"query"`
	Timestamp string `json:"timestamp"`
}

// Answer POSTs the query and returns the decoded response. Failures are one
// of *TimeoutError, *TransportError, *StatusError or *DecodeError; transient
// kinds are retried up to MaxRetries times with linear backoff.
func (c *Client) Answer(ctx context.Context, query string) (*answer.Response, error) {
	if strings.TrimSpace(c.cfg.Endpoint) == "" {
		return nil, errors.New("missing webhook endpoint")
	}
	attempts := c.cfg.MaxRetries + 1
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		res, err := c.tryOnce(ctx, query)
		if err == nil {
			return res, nil
		}
		if !isTransient(err) || i == attempts-1 {
			return nil, err
		}
		lastErr = err
		time.Sleep(time.Duration(i+1) * retryBackoff)
	}
	return nil, lastErr
}

func (c *Client) tryOnce(ctx context.Context, query string) (*answer.Response, error) {
	timeout := c.cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(request{
		Query:     query,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Endpoint: c.cfg.Endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TimeoutError{Timeout: timeout}
		}
		return nil, &TransportError{Endpoint: c.cfg.Endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}
	res, err := answer.Decode(resp.Body)
	if err != nil {
		// The deadline can also fire while the body streams in.
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TimeoutError{Timeout: timeout}
		}
		return nil, &DecodeError{Err: err}
	}
	return res, nil
}

func isTransient(err error) bool {
	var te *TimeoutError
	if errors.As(err, &te) {
		return true
	}
	var tr *TransportError
	return errors.As(err, &tr)
}
