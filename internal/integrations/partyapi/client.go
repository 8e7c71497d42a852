package partyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const upstreamName = "party_api"

// Client talks to the remote booking store (the Party API).
// All persisted state lives behind this client; the console itself
// keeps nothing durable.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    MetricsObserver
	log        Logger
}

// NewClient creates a Party API client. Requests are rate-limited so an
// administrator bulk operation cannot hammer the remote store.
// metrics may be nil.
func NewClient(baseURL string, timeout time.Duration, rps float64, burst int, metrics MetricsObserver, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		metrics: metrics,
		log:     log,
	}
}

// do executes one JSON request against the remote store and records it
// under the given operation name. A nil out skips body decoding.
// notFoundErr is returned on 404; pass nil when 404 is not expected for
// the endpoint.
func (c *Client) do(ctx context.Context, op, method, path string, body interface{}, out interface{}, notFoundErr error) error {
	started := time.Now()
	err := c.roundTrip(ctx, method, path, body, out, notFoundErr)
	c.observe(op, err, notFoundErr, time.Since(started))
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body interface{}, out interface{}, notFoundErr error) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %v", ErrUnavailable, err)
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("partyapi: %s %s -> %d", method, path, resp.StatusCode)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// fall through to decoding
	case resp.StatusCode == http.StatusNotFound && notFoundErr != nil:
		return notFoundErr
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s %s: unexpected status %d: %s",
			ErrUnavailable, method, path, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: failed to decode body: %v", ErrInvalidResponse, method, path, err)
	}

	return nil
}

func (c *Client) observe(op string, err, notFoundErr error, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}

	outcome := "ok"
	switch {
	case err == nil:
	case notFoundErr != nil && errors.Is(err, notFoundErr):
		outcome = "not_found"
	case errors.Is(err, ErrInvalidResponse):
		outcome = "invalid_response"
	default:
		outcome = "unavailable"
	}

	c.metrics.ObserveUpstream(upstreamName, op, outcome, elapsed)
}
