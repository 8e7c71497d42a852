package authservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging subset the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver receives one observation per credential service call.
// Nil when metrics are disabled.
type MetricsObserver interface {
	ObserveUpstream(upstream, operation, outcome string, elapsed time.Duration)
}

const upstreamName = "auth_service"

// Client talks to the credential service. The provider is treated as an
// opaque credential store: the console never sees password hashes or
// token internals.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    MetricsObserver
	log        Logger
}

// NewClient creates a credential service client. metrics may be nil.
func NewClient(baseURL string, timeout time.Duration, metrics MetricsObserver, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// SignIn exchanges credentials for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	var session Session
	if err := c.post(ctx, "/auth/sign-in", body, &session, map[int]error{
		http.StatusUnauthorized: ErrInvalidCredentials,
		http.StatusBadRequest:   ErrInvalidCredentials,
	}); err != nil {
		return nil, err
	}

	c.log.Info("authservice: signed in user=%s", session.UserID)
	return &session, nil
}

// SignUp registers a new account and returns the created session.
func (c *Client) SignUp(ctx context.Context, email, password string, profile Profile) (*Session, error) {
	body := struct {
		Email    string  `json:"email"`
		Password string  `json:"password"`
		Profile  Profile `json:"profile"`
	}{Email: email, Password: password, Profile: profile}

	var session Session
	if err := c.post(ctx, "/auth/sign-up", body, &session, map[int]error{
		http.StatusConflict: ErrEmailTaken,
	}); err != nil {
		return nil, err
	}

	c.log.Info("authservice: registered user=%s", session.UserID)
	return &session, nil
}

// SignOut invalidates a session token.
func (c *Client) SignOut(ctx context.Context, token string) error {
	return c.authorized(ctx, http.MethodPost, "/auth/sign-out", token, nil)
}

// Verify resolves a session token into the user it belongs to.
// Used by the auth middleware on protected routes.
func (c *Client) Verify(ctx context.Context, token string) (*Session, error) {
	var session Session
	if err := c.authorized(ctx, http.MethodGet, "/auth/session", token, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}, statusErrs map[int]error) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.execute(req, out, statusErrs)
}

func (c *Client) authorized(ctx context.Context, method, path, token string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return c.execute(req, out, map[int]error{
		http.StatusUnauthorized: ErrTokenInvalid,
	})
}

func (c *Client) execute(req *http.Request, out interface{}, statusErrs map[int]error) error {
	started := time.Now()
	err := c.roundTrip(req, out, statusErrs)
	c.observe(req.URL.Path, err, statusErrs, time.Since(started))
	return err
}

func (c *Client) roundTrip(req *http.Request, out interface{}, statusErrs map[int]error) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if mapped, ok := statusErrs[resp.StatusCode]; ok {
			return mapped
		}
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s %s: unexpected status %d: %s",
			ErrUnavailable, req.Method, req.URL.Path, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
	}

	return nil
}

func (c *Client) observe(op string, err error, statusErrs map[int]error, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = "unavailable"
		for _, mapped := range statusErrs {
			if errors.Is(err, mapped) {
				outcome = "rejected"
				break
			}
		}
	}

	c.metrics.ObserveUpstream(upstreamName, op, outcome, elapsed)
}
