package authservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeObserver struct {
	observations []string // "operation/outcome"
}

func (f *fakeObserver) ObserveUpstream(upstream, operation, outcome string, _ time.Duration) {
	f.observations = append(f.observations, operation+"/"+outcome)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeObserver) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	observer := &fakeObserver{}
	return NewClient(srv.URL, 5*time.Second, observer, nopLogger{}), observer
}

func TestClient_Verify(t *testing.T) {
	client, observer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/auth/session", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"user_id": "u-1", "email": "admin@lleuresc.example", "email_confirmed": true, "access_token": "tok-123"}`))
	})

	session, err := client.Verify(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "u-1", session.UserID)
	assert.Equal(t, []string{"/auth/session/ok"}, observer.observations)
}

func TestClient_Verify_RejectedToken(t *testing.T) {
	client, observer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Verify(context.Background(), "expired")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Equal(t, []string{"/auth/session/rejected"}, observer.observations)
}

func TestClient_SignIn_Unavailable(t *testing.T) {
	client, observer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.SignIn(context.Background(), "a@b.example", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, []string{"/auth/sign-in/unavailable"}, observer.observations)
}
