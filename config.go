package kanoclient

import (
	"net/http"

	"github.com/kano-labs/kano-api-client/pkg/gateway"
	"github.com/kano-labs/kano-api-client/pkg/logging"
	"github.com/kano-labs/kano-api-client/pkg/storage"
)

// Config enumerates the recognized client options. Only DefaultURL is
// required; every other field has a default applied at construction.
type Config struct {
	// DefaultURL is the base URL of the identity service. Required unless a
	// Gateway override is supplied.
	DefaultURL string

	// Gateway overrides the network transport. When set, DefaultURL is
	// ignored and may be empty.
	Gateway gateway.Gateway

	// Storage overrides the key-value store backing the offline session
	// cache. Defaults to an in-process store; pass storage.NewBadger or
	// storage.NewRedis for a cache that outlives the process.
	Storage storage.Store

	// HTTPClient is used by the default HTTP gateway. Ignored when Gateway
	// is set.
	HTTPClient *http.Client

	// Logger receives diagnostics. Defaults to a warn-level stderr logger.
	Logger logging.Logger
}
