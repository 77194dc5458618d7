package kanoclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kano-labs/kano-api-client/internal/cache"
	"github.com/kano-labs/kano-api-client/internal/cryptox"
	"github.com/kano-labs/kano-api-client/internal/validate"
	"github.com/kano-labs/kano-api-client/pkg/gateway"
	"github.com/kano-labs/kano-api-client/pkg/logging"
	"github.com/kano-labs/kano-api-client/pkg/storage"
)

const (
	endpointAuth           = "auth"
	endpointUsers          = "users"
	endpointForgotUsername = "forgot-username"
	endpointForgotPassword = "forgot-password"
)

// Client is an identity-service client holding at most one authenticated
// session. Overlapping calls on the same instance are not serialized: the
// session state follows last-write-wins, which callers coordinating several
// goroutines need to be aware of.
type Client struct {
	gateway gateway.Gateway
	cache   *cache.Cache
	log     logging.Logger

	mu   sync.Mutex
	sess *Session
}

// New validates cfg, applies defaults, and returns a logged-out client.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, ErrMissingSettings
	}

	gw := cfg.Gateway
	if gw == nil {
		if cfg.DefaultURL == "" {
			return nil, ErrMissingDefaultURL
		}
		gw = gateway.NewHTTP(cfg.DefaultURL, cfg.HTTPClient)
	}

	store := cfg.Storage
	if store == nil {
		store = storage.NewMemory()
	}

	log := cfg.Logger
	if log == nil {
		log = logging.NewDefault()
	}

	return &Client{gateway: gw, cache: cache.New(store), log: log}, nil
}

// Login authenticates with the service and, on success, caches the session
// for offline use. When the service is unreachable it falls back to the
// cached record: the online attempt always comes first, and a server-side
// rejection of the credentials never consults the cache.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	if err := validate.Username(username); err != nil {
		return nil, err
	}

	resp, err := c.gateway.Post(ctx, endpointAuth, credentials{Username: username, Password: password})
	if err == nil {
		sess, err := sessionFromAuthData(username, resp.Data, time.Now())
		if err != nil {
			return nil, fmt.Errorf("decoding auth response: %w", err)
		}
		c.saveOfflineSession(ctx, username, password, sess)
		c.setSession(sess)
		return sess, nil
	}

	if !errors.Is(err, gateway.ErrUnavailable) {
		c.log.Debug(ctx, "login rejected", "error", err)
		return nil, ErrInvalidCredentials
	}

	c.log.Warn(ctx, "identity service unreachable, trying offline login", "error", err)
	return c.offlineLogin(ctx, username, password)
}

// offlineLogin decrypts the cached session with a key derived from the
// presented credentials. A missing record and a failed decryption surface as
// the same error so nothing about the cache's contents leaks.
func (c *Client) offlineLogin(ctx context.Context, username, password string) (*Session, error) {
	key := cryptox.DeriveKey(username, password)
	defer cryptox.Wipe(key)

	var sess Session
	if err := c.cache.Load(ctx, cryptox.HashUsername(username), key, &sess); err != nil {
		if errors.Is(err, cache.ErrNoRecord) || errors.Is(err, cache.ErrDecrypt) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("offline login: %w", err)
	}
	if sess.Username != username {
		return nil, ErrInvalidCredentials
	}

	c.setSession(&sess)
	return &sess, nil
}

// saveOfflineSession write-through-caches sess. Failure to persist is logged
// rather than failing the login: the user did authenticate.
func (c *Client) saveOfflineSession(ctx context.Context, username, password string, sess *Session) {
	key := cryptox.DeriveKey(username, password)
	defer cryptox.Wipe(key)

	if err := c.cache.Save(ctx, cryptox.HashUsername(username), key, sess); err != nil {
		c.log.Warn(ctx, "offline session not cached", "error", err)
	}
}

// Logout discards the in-memory session. It succeeds whether or not anyone
// is logged in, and leaves the persisted cache untouched so a later offline
// login still works.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	c.sess = nil
	c.mu.Unlock()
	return nil
}

// ClearOfflineSession removes the cached record for username. This is the
// explicit invalidation Logout deliberately does not perform.
func (c *Client) ClearOfflineSession(ctx context.Context, username string) error {
	return c.cache.Clear(ctx, cryptox.HashUsername(username))
}

// IsLoggedIn reports whether the client currently holds a session.
func (c *Client) IsLoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess != nil
}

// Session returns a copy of the current session, if any.
func (c *Client) Session() (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess == nil {
		return Session{}, false
	}
	return *c.sess, true
}

func (c *Client) setSession(sess *Session) {
	c.mu.Lock()
	c.sess = sess
	c.mu.Unlock()
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
