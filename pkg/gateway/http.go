package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

const defaultTimeout = 15 * time.Second

// HTTP is the default Gateway implementation. Transport-level failures and
// 5xx answers are retried with fibonacci backoff before being reported as
// ErrUnavailable; 4xx answers are never retried.
type HTTP struct {
	baseURL    string
	client     *http.Client
	maxRetries uint64
	backoff    time.Duration
}

// NewHTTP builds a gateway for the given base URL. A nil client gets a
// default with a request timeout applied.
func NewHTTP(baseURL string, client *http.Client) *HTTP {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTP{
		baseURL:    strings.TrimRight(baseURL, "/"),
		client:     client,
		maxRetries: 3,
		backoff:    100 * time.Millisecond,
	}
}

func (g *HTTP) Post(ctx context.Context, endpoint string, body any) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	return g.do(ctx, http.MethodPost, endpoint, payload)
}

func (g *HTTP) Fetch(ctx context.Context, endpoint string) (*Response, error) {
	return g.do(ctx, http.MethodGet, endpoint, nil)
}

func (g *HTTP) do(ctx context.Context, method, endpoint string, payload []byte) (*Response, error) {
	var out *Response

	backoff := retry.WithMaxRetries(g.maxRetries, retry.NewFibonacci(g.backoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := g.attempt(ctx, method, endpoint, payload)
		if err != nil {
			if errors.Is(err, ErrUnavailable) {
				return retry.RetryableError(err)
			}
			return err
		}
		out = resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (g *HTTP) attempt(ctx context.Context, method, endpoint string, payload []byte) (*Response, error) {
	url := g.baseURL + "/" + strings.TrimLeft(endpoint, "/")

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, res.StatusCode)
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case res.StatusCode >= http.StatusBadRequest:
		return nil, fmt.Errorf("%w: status %d", ErrRejected, res.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &out, nil
}
