package opendata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"fahrplan/internal/connection"
	pkgLog "fahrplan/pkg/log"
)

// DefaultBaseURL is the public transport.opendata.ch endpoint.
const DefaultBaseURL = "http://transport.opendata.ch/v1"

// ClientOptions configures a Client.
type ClientOptions struct {
	BaseURL   string
	Timeout   time.Duration
	Proxy     string // HTTP proxy URL, empty uses the environment
	UserAgent string

	RetryAttempts   int           // Extra attempts after a network failure
	RetryDelay      time.Duration // Linear backoff step
	RateLimitPerMin int           // 0 disables rate limiting
}

// Client is the HTTP wrapper for the transport.opendata.ch API.
type Client struct {
	baseURL    *url.URL
	userAgent  string
	httpClient *http.Client

	retryAttempts int
	retryDelay    time.Duration
	limiter       *rate.Limiter

	l pkgLog.Logger
}

// NewClient creates a new timetable API client.
func NewClient(l pkgLog.Logger, opt ClientOptions) (*Client, error) {
	if opt.BaseURL == "" {
		opt.BaseURL = DefaultBaseURL
	}
	base, err := url.Parse(opt.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", opt.BaseURL, err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opt.Proxy != "" {
		proxyURL, err := url.Parse(opt.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL %q: %w", opt.Proxy, err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	c := &Client{
		baseURL:       base,
		userAgent:     opt.UserAgent,
		httpClient:    &http.Client{Timeout: opt.Timeout, Transport: transport},
		retryAttempts: opt.RetryAttempts,
		retryDelay:    opt.RetryDelay,
		l:             l,
	}
	if opt.RateLimitPerMin > 0 {
		// A tenth of the per-minute budget may be spent at once.
		burst := max(opt.RateLimitPerMin/10, 1)
		c.limiter = rate.NewLimiter(rate.Limit(float64(opt.RateLimitPerMin)/60.0), burst)
	}
	return c, nil
}

// GetConnections calls GET /connections with the given query parameters.
func (c *Client) GetConnections(ctx context.Context, params url.Values) (*ConnectionsResponse, error) {
	var resp ConnectionsResponse
	if err := c.get(ctx, "connections", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// get performs a GET request, retrying network failures with linear backoff.
func (c *Client) get(ctx context.Context, action string, params url.Values, out any) error {
	if c.limiter != nil && !c.limiter.Allow() {
		return fmt.Errorf("%w for %s", connection.ErrRateLimited, c.baseURL.Host)
	}

	endpoint := c.baseURL.JoinPath(action)
	endpoint.RawQuery = params.Encode()

	var lastErr error
	for attempt := 0; attempt <= c.retryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * c.retryDelay
			c.l.Warnf(ctx, "opendata: retrying %s in %s after: %v", action, delay, lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		body, err := c.do(ctx, endpoint.String())
		if err == nil {
			if err := json.Unmarshal(body, out); err != nil {
				c.l.Debugf(ctx, "opendata: response content: %q", body)
				return fmt.Errorf("%w (invalid JSON): %v", connection.ErrInvalidResponse, err)
			}
			return nil
		}
		if !errors.Is(err, connection.ErrNetworkUnreachable) {
			return err
		}
		lastErr = err
	}
	return lastErr
}

func (c *Client) do(ctx context.Context, endpoint string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build opendata request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}
	if runID := pkgLog.RunIDFromContext(ctx); runID != "" {
		httpReq.Header.Set("X-Request-ID", runID)
	}

	c.l.Debugf(ctx, "opendata: GET %s", endpoint)
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", connection.ErrNetworkUnreachable, err)
	}
	defer resp.Body.Close()

	c.l.Debugf(ctx, "opendata: response status: %d", resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", connection.ErrNetworkUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.l.Debugf(ctx, "opendata: response content: %q", body)
		text := http.StatusText(resp.StatusCode)
		if text == "" {
			text = "unknown"
		}
		return nil, &connection.StatusError{Code: resp.StatusCode, Text: text}
	}
	return body, nil
}
