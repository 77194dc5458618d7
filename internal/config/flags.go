package config

import (
	"flag"
	"os"
	"time"

	"github.com/kano-labs/kano-api-client/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-u string   base URL of the identity service
//	-d string   cache directory for the offline session store
//	-t int      request timeout in seconds
//
// The function filters os.Args to the flags it knows about, via
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DefaultURL, "u", cfg.DefaultURL, "base URL of the identity service")
	fs.StringVar(&cfg.CacheDir, "d", cfg.CacheDir, "cache directory for the offline session store")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
