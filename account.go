package kanoclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kano-labs/kano-api-client/internal/validate"
)

// CreateRequest carries the registration fields plus an optional populate
// spec: a mapping from result keys to dot-separated paths into the server
// response, e.g. {"id": "user.id"}.
type CreateRequest struct {
	Username string
	Email    string
	Password string
	Populate map[string]string
}

// Create registers a new account and logs it in, caching the session the
// same way a successful Login does, so a freshly created account is
// immediately usable offline. The returned map holds the populate spec's
// keys resolved against the response; it is empty when no spec was given.
func (c *Client) Create(ctx context.Context, req CreateRequest) (map[string]any, error) {
	if err := validate.Username(req.Username); err != nil {
		return nil, err
	}
	if err := validate.Email(req.Email); err != nil {
		return nil, err
	}
	if req.Password == "" {
		return nil, ErrMissingPassword
	}

	body := map[string]string{
		"username": req.Username,
		"email":    req.Email,
		"password": req.Password,
	}
	resp, err := c.gateway.Post(ctx, endpointUsers, body)
	if err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	sess, err := sessionFromAuthData(req.Username, resp.Data, time.Now())
	if err != nil {
		return nil, fmt.Errorf("decoding create response: %w", err)
	}
	c.saveOfflineSession(ctx, req.Username, req.Password, sess)
	c.setSession(sess)

	return resolvePopulate(resp.Data, req.Populate)
}

// Check asks the service whether an entity exists. The query is a namespace
// plus a candidate name, e.g. "users.marcus7777". Purely a read-through: no
// state change, no cache interaction.
func (c *Client) Check(ctx context.Context, query string) (bool, error) {
	namespace, candidate, found := strings.Cut(query, ".")
	if !found || namespace == "" || candidate == "" {
		return false, fmt.Errorf("%w: %q", ErrInvalidQuery, query)
	}

	resp, err := c.gateway.Fetch(ctx, namespace+"/"+candidate)
	if err != nil {
		return false, err
	}
	return parseBoolData(resp.Data)
}

// ForgotUsername requests a username-reminder email. Validation failure stops
// the call before any network access; any remote rejection is normalized to
// the same invalid-email error.
func (c *Client) ForgotUsername(ctx context.Context, email string) error {
	if err := validate.Email(email); err != nil {
		return err
	}
	if _, err := c.gateway.Post(ctx, endpointForgotUsername, map[string]string{"email": email}); err != nil {
		c.log.Debug(ctx, "forgot-username rejected", "error", err)
		return ErrInvalidEmail
	}
	return nil
}

// ForgotPassword requests a password reset for the given username. Same
// contract as ForgotUsername: validate first, normalize remote rejections.
func (c *Client) ForgotPassword(ctx context.Context, username string) error {
	if err := validate.Username(username); err != nil {
		return err
	}
	if _, err := c.gateway.Post(ctx, endpointForgotPassword, map[string]string{"username": username}); err != nil {
		c.log.Debug(ctx, "forgot-password rejected", "error", err)
		return ErrInvalidUsername
	}
	return nil
}

// parseBoolData interprets the data field of an existence check, which the
// service sends either as a JSON bool or as the string "true"/"false".
func parseBoolData(data json.RawMessage) (bool, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return false, fmt.Errorf("decoding check response: %w", err)
	}
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return false, fmt.Errorf("unexpected check response %q", val)
		}
		return b, nil
	default:
		return false, fmt.Errorf("unexpected check response of type %T", v)
	}
}
