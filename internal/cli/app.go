package cli

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"

	kanoclient "github.com/kano-labs/kano-api-client"
	"github.com/kano-labs/kano-api-client/internal/config"
	"github.com/kano-labs/kano-api-client/pkg/storage"
)

// App holds the pieces of the interactive client: the API client, the
// persistent store behind its offline cache, and the input reader.
type App struct {
	config *config.Config
	api    *kanoclient.Client
	store  *storage.Badger
	reader *bufio.Reader
}

// NewApp opens the offline-session store and builds the API client on top of
// it.
func NewApp(cfg *config.Config) (*App, error) {
	store, err := storage.NewBadger(cfg.CacheDir)
	if err != nil {
		return nil, err
	}

	api, err := kanoclient.New(&kanoclient.Config{
		DefaultURL: cfg.DefaultURL,
		Storage:    store,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{
		config: cfg,
		api:    api,
		store:  store,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Println("Kano identity CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// Close releases the offline-session store.
func (a *App) Close() error {
	return a.store.Close()
}

func (a *App) isLoggedIn() bool {
	return a.api.IsLoggedIn()
}

// status renders the prompt decoration, e.g. "(testing)" when logged in.
func (a *App) status() string {
	sess, ok := a.api.Session()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s)", sess.Username)
}
