package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGateway shortens the backoff so retry paths stay fast.
func newTestGateway(url string) *HTTP {
	g := NewHTTP(url, nil)
	g.backoff = time.Millisecond
	return g
}

func TestHTTP_Post_Success(t *testing.T) {
	var gotBody map[string]string
	var gotRequestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotRequestID = r.Header.Get("X-Request-Id")

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"data":{"token":"abc"},"path":"/users/1"}`))
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL)

	resp, err := g.Post(context.Background(), "auth", map[string]string{"username": "testing"})
	require.NoError(t, err)

	assert.Equal(t, "/users/1", resp.Path)
	assert.JSONEq(t, `{"token":"abc"}`, string(resp.Data))
	assert.Equal(t, map[string]string{"username": "testing"}, gotBody)
	assert.NotEmpty(t, gotRequestID)
}

func TestHTTP_Fetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/users/marcus7777", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":"true"}`))
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL)

	resp, err := g.Fetch(context.Background(), "users/marcus7777")
	require.NoError(t, err)
	assert.Equal(t, `"true"`, string(resp.Data))
}

func TestHTTP_Unauthorized_NoRetry(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL)

	_, err := g.Post(context.Background(), "auth", map[string]string{})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTP_BadRequest_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL)

	_, err := g.Post(context.Background(), "users", map[string]string{})
	assert.ErrorIs(t, err, ErrRejected)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestHTTP_ServerError_RetriedThenUnavailable(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL)

	_, err := g.Fetch(context.Background(), "users/x")
	assert.ErrorIs(t, err, ErrUnavailable)
	// initial attempt plus maxRetries
	assert.Equal(t, int32(4), calls.Load())
}

func TestHTTP_ServerError_RecoversWithinRetries(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"data":"true"}`))
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL)

	resp, err := g.Fetch(context.Background(), "users/x")
	require.NoError(t, err)
	assert.Equal(t, `"true"`, string(resp.Data))
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTP_ConnectionRefused_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	g := newTestGateway(srv.URL)

	_, err := g.Fetch(context.Background(), "users/x")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTP_MalformedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL)

	_, err := g.Fetch(context.Background(), "users/x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
}
