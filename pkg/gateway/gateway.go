// Package gateway defines the remote identity-service boundary: two
// operations returning the server's {data, path} envelope, plus a default
// JSON-over-HTTP implementation. Test doubles implement the same interface
// instead of monkey-patching transport functions.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	// ErrUnavailable marks transport-level failure: the server could not be
	// reached, timed out, or answered 5xx after retries. During login this is
	// the signal to try the offline cache.
	ErrUnavailable = errors.New("service unavailable")

	// ErrUnauthorized marks a server-side rejection of the presented
	// credentials (401/403).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRejected marks any other server-side refusal of the request (4xx).
	ErrRejected = errors.New("request rejected")
)

// Response is the envelope every identity-service endpoint replies with. Data
// stays raw because its shape depends on the endpoint: an auth payload for
// login/create, a bare "true"/"false" for existence checks.
type Response struct {
	Data json.RawMessage `json:"data"`
	Path string          `json:"path"`
}

// Gateway performs the network calls on behalf of the client. A rejection of
// a Post during login is interpreted by the caller per the errors above; this
// package never looks inside Data.
type Gateway interface {
	// Post sends body as JSON to the endpoint (login, registration, recovery).
	Post(ctx context.Context, endpoint string, body any) (*Response, error)

	// Fetch performs a read-only lookup against the endpoint (existence checks).
	Fetch(ctx context.Context, endpoint string) (*Response, error)
}
